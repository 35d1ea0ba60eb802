package pipewire

import (
	"context"
	"encoding/json"
	"os/exec"

	"github.com/pkg/errors"
)

const interfaceNode = "PipeWire:Interface:Node"

// media classes whose output pw-cat can record
var monitorClasses = map[string]bool{
	"Audio/Sink":          true,
	"Stream/Output/Audio": true,
}

// node is the part of a pw-dump object needed to pick a record target.
type node struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Info struct {
		Props struct {
			Name  string `json:"node.name"`
			Class string `json:"media.class"`
		} `json:"props"`
	} `json:"info"`
}

func (n node) monitorable() bool {
	return n.Type == interfaceNode && monitorClasses[n.Info.Props.Class]
}

// targets runs pw-dump and returns the names of the nodes pw-cat can record.
func targets(ctx context.Context) ([]string, error) {
	out, err := exec.CommandContext(ctx, "pw-dump").Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, errors.Wrapf(err, "failed to run pw-dump: %s", exitErr.Stderr)
		}
		return nil, errors.Wrap(err, "failed to run pw-dump")
	}

	return parseTargets(out)
}

func parseTargets(data []byte) ([]string, error) {
	var nodes []node
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, errors.Wrap(err, "failed to parse pw-dump output")
	}

	var names []string
	for _, n := range nodes {
		if n.monitorable() {
			names = append(names, n.Info.Props.Name)
		}
	}

	return names, nil
}
