package chain

import (
	"fmt"
	"strconv"
	"strings"
)

/*
SyncStatus describes a node's block synchronisation progress as reported by
its sync-state endpoint.
*/
type SyncStatus struct {
	Syncing       bool   `json:"syncing"`
	StartingBlock uint64 `json:"startingBlock"`
	CurrentBlock  uint64 `json:"currentBlock"`
	HighestBlock  uint64 `json:"highestBlock"`
}

/*
ParseSyncStatus parses a raw sync-state payload. The payload is either the
boolean false, meaning the node is not syncing, or an object whose
startingBlock, currentBlock and highestBlock fields are 0x-prefixed hex
quantities.
*/
func ParseSyncStatus(v any) (SyncStatus, error) {
	switch payload := v.(type) {
	case bool:
		if payload {
			return SyncStatus{}, fmt.Errorf("invalid sync state: true")
		}

		return SyncStatus{Syncing: false}, nil
	case map[string]any:
		status := SyncStatus{Syncing: true}

		for field, target := range map[string]*uint64{
			"startingBlock": &status.StartingBlock,
			"currentBlock":  &status.CurrentBlock,
			"highestBlock":  &status.HighestBlock,
		} {
			raw, ok := payload[field]

			if !ok {
				return SyncStatus{}, fmt.Errorf("sync state missing %s", field)
			}

			quantity, err := ParseQuantity(raw)

			if err != nil {
				return SyncStatus{}, fmt.Errorf("invalid %s: %w", field, err)
			}

			*target = quantity
		}

		return status, nil
	default:
		return SyncStatus{}, fmt.Errorf("invalid sync state of type %T", v)
	}
}

/*
ParseQuantity parses a block quantity, either a 0x-prefixed hex string or a
plain JSON number.
*/
func ParseQuantity(v any) (uint64, error) {
	switch quantity := v.(type) {
	case string:
		hex, ok := strings.CutPrefix(quantity, "0x")

		if !ok || hex == "" {
			return 0, fmt.Errorf("quantity %q is not 0x-prefixed hex", quantity)
		}

		parsed, err := strconv.ParseUint(hex, 16, 64)

		if err != nil {
			return 0, fmt.Errorf("quantity %q is not valid hex: %w", quantity, err)
		}

		return parsed, nil
	case float64:
		if quantity < 0 || quantity != float64(uint64(quantity)) {
			return 0, fmt.Errorf("quantity %v is not a block number", quantity)
		}

		return uint64(quantity), nil
	default:
		return 0, fmt.Errorf("quantity of type %T is not supported", v)
	}
}
