package roster

import (
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

// SlotEntry is one persisted roster slot. SlotNumber encodes order, not
// identity: it is recomputed from list position on every save and used
// only as a sort key when reading, so gaps and non-contiguous values in
// stored data are tolerated.
type SlotEntry struct {
	PlayerID         string `json:"player_id"`
	SlotNumber       int    `json:"slot_number"`
	PositionOverride string `json:"position_override,omitempty"`
}

// SavedRoster is the durable, whole-record representation of one game
// roster. Saves replace the entire record; there is no field-level merge.
type SavedRoster struct {
	ID           string
	TeamID       string
	Title        string
	GameDate     *time.Time
	StarterSlots int
	Starters     []SlotEntry
	Substitutes  []SlotEntry
	UpdatedAt    time.Time
}

// RecordPayload is the wire shape of a roster's assignment state.
type RecordPayload struct {
	StarterSlots int         `json:"starter_slots"`
	Starters     []SlotEntry `json:"starters"`
	Substitutes  []SlotEntry `json:"substitutes"`
}

func (r SavedRoster) Payload() RecordPayload {
	return RecordPayload{
		StarterSlots: r.StarterSlots,
		Starters:     append([]SlotEntry(nil), r.Starters...),
		Substitutes:  append([]SlotEntry(nil), r.Substitutes...),
	}
}

// EncodeEntries serializes one slot list for storage.
func EncodeEntries(entries []SlotEntry) ([]byte, error) {
	if entries == nil {
		entries = []SlotEntry{}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(entries); err != nil {
		return nil, fmt.Errorf("encode slot entries: %w", err)
	}

	return append([]byte(nil), buf.Bytes()...), nil
}

// DecodeEntries parses one stored slot list. Structural damage (not an
// array, non-numeric slot numbers, missing player ids) is malformed;
// slot numbers only need to be positive, not contiguous.
func DecodeEntries(data []byte) ([]SlotEntry, error) {
	if len(data) == 0 {
		return []SlotEntry{}, nil
	}

	var entries []SlotEntry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	if err := validateEntries(entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func validateEntries(entries []SlotEntry) error {
	for i, entry := range entries {
		if entry.PlayerID == "" {
			return fmt.Errorf("%w: entry %d has no player_id", ErrMalformedRecord, i)
		}
		if entry.SlotNumber < 1 {
			return fmt.Errorf("%w: entry %d has slot_number %d", ErrMalformedRecord, i, entry.SlotNumber)
		}
	}

	return nil
}
