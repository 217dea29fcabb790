package entity

import "testing"

func TestHasProtocol(t *testing.T) {
	product := &DataProduct{Protocols: []string{ProtocolAPI, ProtocolDataSync}}

	if !product.HasProtocol(ProtocolAPI) {
		t.Error("expected API protocol")
	}
	if !product.HasProtocol(ProtocolDataSync) {
		t.Error("expected Data sync protocol")
	}
	if product.HasProtocol(ProtocolEvent) {
		t.Error("unexpected Event protocol")
	}

	empty := &DataProduct{}
	if empty.HasProtocol(ProtocolAPI) {
		t.Error("empty protocol list must match nothing")
	}
}

func TestVisibleTo(t *testing.T) {
	tests := []struct {
		name      string
		audiences []string
		roles     []string
		want      bool
	}{
		{"matching role", []string{"internal"}, []string{"internal"}, true},
		{"one of several roles", []string{"partner"}, []string{"internal", "partner"}, true},
		{"no overlap", []string{"internal"}, []string{"external"}, false},
		{"no audiences", nil, []string{"internal"}, false},
		{"no roles", []string{"internal"}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := &DataProduct{Audiences: tt.audiences}
			if got := product.VisibleTo(tt.roles); got != tt.want {
				t.Errorf("VisibleTo(%v) = %v, want %v", tt.roles, got, tt.want)
			}
		})
	}
}

func TestRatePlanForCreate(t *testing.T) {
	plan := &MonetizationRatePlan{
		Name:        "rateplans/12345",
		DisplayName: "Standard",
		State:       "PUBLISHED",
	}

	created := plan.ForCreate()
	if created.Name != "" {
		t.Errorf("name = %q, want empty", created.Name)
	}
	if created.DisplayName != "Standard" || created.State != "PUBLISHED" {
		t.Errorf("fields lost: %+v", created)
	}
	if plan.Name != "rateplans/12345" {
		t.Error("original plan mutated")
	}
}
