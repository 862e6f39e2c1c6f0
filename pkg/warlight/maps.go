package warlight

import (
	"context"
	"strconv"
)

// MapCommand is one edit sent to SetMapDetails. Args are flattened next to
// the command name on the wire.
type MapCommand struct {
	Command string
	Args    map[string]any
}

// MarshalJSON implements json.Marshaler.
func (m MapCommand) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Args)+1)
	for k, v := range m.Args {
		out[k] = v
	}
	out["command"] = m.Command
	return wire.Marshal(out)
}

// SetTerritoryName names a territory.
func SetTerritoryName(territoryID int, name string) MapCommand {
	return MapCommand{Command: "setTerritoryName", Args: map[string]any{"id": territoryID, "name": name}}
}

// SetTerritoryCenterPoint places the army label of a territory.
func SetTerritoryCenterPoint(territoryID int, x, y float64) MapCommand {
	return MapCommand{Command: "setTerritoryCenterPoint", Args: map[string]any{"id": territoryID, "x": x, "y": y}}
}

// AddTerritoryConnection connects two territories. wrap is "Normal",
// "WrapHorizontally" or "WrapVertically".
func AddTerritoryConnection(id1, id2 int, wrap string) MapCommand {
	return MapCommand{Command: "addTerritoryConnection", Args: map[string]any{"id1": id1, "id2": id2, "wrap": wrap}}
}

// AddBonus declares a bonus worth armies, drawn in color (#rrggbb).
func AddBonus(name string, armies int, color string) MapCommand {
	return MapCommand{Command: "addBonus", Args: map[string]any{"name": name, "armies": armies, "color": color}}
}

// AddTerritoryToBonus puts a territory into a bonus.
func AddTerritoryToBonus(territoryID int, bonusName string) MapCommand {
	return MapCommand{Command: "addTerritoryToBonus", Args: map[string]any{"id": territoryID, "bonusName": bonusName}}
}

// AddDistributionMode declares a distribution mode.
func AddDistributionMode(name string) MapCommand {
	return MapCommand{Command: "addDistributionMode", Args: map[string]any{"name": name}}
}

// AddTerritoryToDistribution puts a territory into a distribution mode.
func AddTerritoryToDistribution(territoryID int, distributionName string) MapCommand {
	return MapCommand{Command: "addTerritoryToDistribution", Args: map[string]any{"id": territoryID, "distributionName": distributionName}}
}

// SetMapDetails applies commands to a map the account owns.
func (c *Client) SetMapDetails(ctx context.Context, mapID int64, commands ...MapCommand) error {
	for i, cmd := range commands {
		if cmd.Command == "" {
			return c.reject(argError(OpSetMapDetails, "command", "command "+strconv.Itoa(i)+" has no name"))
		}
	}
	if commands == nil {
		commands = []MapCommand{}
	}

	_, err := c.do(ctx, call{
		op:       OpSetMapDetails,
		endpoint: endpointSetMapDetails,
		body: mapDetailsPayload{
			Email:    c.email,
			APIToken: c.token,
			MapID:    strconv.FormatInt(mapID, 10),
			Commands: commands,
		},
	})
	return err
}
