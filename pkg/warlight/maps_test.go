package warlight

import (
	"testing"
)

func TestMapCommandFlattensArgs(t *testing.T) {
	data, err := wire.Marshal(AddTerritoryConnection(1, 2, "Normal"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"command":"addTerritoryConnection","id1":1,"id2":2,"wrap":"Normal"}` {
		t.Fatalf("unexpected wire form %s", data)
	}
}

func TestMapCommandNameWinsOverArgs(t *testing.T) {
	data, err := wire.Marshal(MapCommand{Command: "addBonus", Args: map[string]any{"command": "other"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"command":"addBonus"}` {
		t.Fatalf("unexpected wire form %s", data)
	}
}

func TestMapCommandConstructors(t *testing.T) {
	cases := map[string]MapCommand{
		"setTerritoryName":           SetTerritoryName(1, "A"),
		"setTerritoryCenterPoint":    SetTerritoryCenterPoint(1, 10.5, 20),
		"addTerritoryConnection":     AddTerritoryConnection(1, 2, "WrapHorizontally"),
		"addBonus":                   AddBonus("B", 2, "#000000"),
		"addTerritoryToBonus":        AddTerritoryToBonus(1, "B"),
		"addDistributionMode":        AddDistributionMode("D"),
		"addTerritoryToDistribution": AddTerritoryToDistribution(1, "D"),
	}
	for name, cmd := range cases {
		if cmd.Command != name {
			t.Fatalf("expected command %s, got %s", name, cmd.Command)
		}
		if len(cmd.Args) == 0 {
			t.Fatalf("expected args for %s", name)
		}
	}
}
