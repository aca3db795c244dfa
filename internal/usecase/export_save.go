package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

// ExportedSave is the JSON shape of a save slot. Unset fields are null.
type ExportedSave struct {
	Slot    int              `json:"slot"`
	Players []ExportedPlayer `json:"players"`
}

type ExportedPlayer struct {
	Seat       int             `json:"seat"`
	Name       string          `json:"name"`
	Complete   bool            `json:"complete"`
	FinalTotal int             `json:"final_total"`
	Fields     map[string]*int `json:"fields"`
	Raw        []int           `json:"raw"`
}

type ExportSave struct {
	store ports.SaveStore
}

func NewExportSave(store ports.SaveStore) *ExportSave {
	return &ExportSave{store: store}
}

// Execute renders slot as indented JSON. A non-empty query is evaluated as
// a JSONPath expression against that document and only its result is
// returned.
func (uc *ExportSave) Execute(slot int, query string) ([]byte, error) {
	g, err := uc.store.Load(slot)
	if err != nil {
		return nil, err
	}

	doc, err := buildExport(slot, g)
	if err != nil {
		return nil, err
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}

	expr := strings.TrimSpace(query)
	if expr == "" {
		return b, nil
	}

	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err
	}
	val, err := jsonpath.Get(expr, generic)
	if err != nil {
		return nil, &domain.OpError{Op: "export.query", Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("jsonpath %q: %v: %w", expr, err, domain.ErrInvalidConfig)}
	}
	return json.MarshalIndent(val, "", "  ")
}

func buildExport(slot int, g domain.SavedGame) (ExportedSave, error) {
	out := ExportedSave{Slot: slot, Players: make([]ExportedPlayer, 0, len(g.Players))}
	for i, p := range g.Players {
		card, err := domain.CardFromRaw(p.Cards)
		if err != nil {
			return ExportedSave{}, err
		}

		fields := make(map[string]*int, domain.FieldCount)
		for _, c := range domain.AllCategories() {
			if !card.IsSet(c) {
				fields[c.Slug()] = nil
				continue
			}
			v := card.Value(c)
			fields[c.Slug()] = &v
		}

		out.Players = append(out.Players, ExportedPlayer{
			Seat:       i + 1,
			Name:       p.Name,
			Complete:   card.IsComplete(),
			FinalTotal: card.FinalTotal(),
			Fields:     fields,
			Raw:        p.Cards[:],
		})
	}
	return out, nil
}
