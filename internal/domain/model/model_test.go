package model

import "testing"

func TestRoleValues(t *testing.T) {
	cases := []struct {
		name  string
		got   Role
		value string
	}{
		{"admin", RoleAdmin, "ADMIN"},
		{"team", RoleTeam, "TEAM"},
		{"buyer", RoleBuyer, "BUYER"},
		{"supplier", RoleSupplier, "SUPPLIER"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if string(tc.got) != tc.value {
				t.Fatalf("expected %s, got %s", tc.value, tc.got)
			}
			if !ValidRole(tc.got) {
				t.Fatalf("expected %s to be valid", tc.got)
			}
		})
	}

	if ValidRole("MANAGER") {
		t.Fatal("unexpected role accepted")
	}
}

func TestParseDocumentType(t *testing.T) {
	known := []string{
		"COMMERCIAL_INVOICE",
		"CERTIFICATE_OF_ORIGIN",
		"PHYTOSANITARY_CERTIFICATE",
		"PACKING_LIST",
		"BILL_OF_LADING",
	}
	for _, raw := range known {
		if _, ok := ParseDocumentType(raw); !ok {
			t.Fatalf("expected %s to parse", raw)
		}
	}

	for _, raw := range []string{"", "INVOICE", "commercial_invoice"} {
		if _, ok := ParseDocumentType(raw); ok {
			t.Fatalf("expected %q to be rejected", raw)
		}
	}
}

func TestUserPayload(t *testing.T) {
	u := User{ID: 7, Email: "ops@nafru.example", Name: "Ops", Role: RoleTeam, Language: "en", PasswordHash: "x"}
	p := u.Payload()
	if p.ID != 7 || p.Email != u.Email || p.Name != u.Name || p.Role != RoleTeam || p.Language != "en" {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestPageRequestNormalize(t *testing.T) {
	cases := []struct {
		name   string
		in     PageRequest
		page   int
		limit  int
		offset int
	}{
		{"defaults", PageRequest{}, 1, 10, 0},
		{"negative", PageRequest{Page: -3, Limit: -1}, 1, 10, 0},
		{"explicit", PageRequest{Page: 3, Limit: 25}, 3, 25, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.Page != tc.page || got.Limit != tc.limit {
				t.Fatalf("unexpected normalized request: %+v", got)
			}
			if got.Offset() != tc.offset {
				t.Fatalf("unexpected offset: %d", got.Offset())
			}
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(PageRequest{Page: 2, Limit: 10}, 35)
	if p.Pages != 4 {
		t.Fatalf("expected 4 pages, got %d", p.Pages)
	}
	if p.Total != 35 || p.Page != 2 || p.Limit != 10 {
		t.Fatalf("unexpected pagination: %+v", p)
	}

	empty := NewPagination(PageRequest{Page: 1, Limit: 10}, 0)
	if empty.Pages != 0 {
		t.Fatalf("expected 0 pages for empty result, got %d", empty.Pages)
	}
}
