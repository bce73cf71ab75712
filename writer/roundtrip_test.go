package writer

import (
	"testing"

	"pgregory.net/rapid"

	"hyprbind/domain"
	"hyprbind/parser"
)

// bindingTuple is the semantic identity the round-trip guarantees
type bindingTuple struct {
	key         domain.ConflictKey
	action      string
	params      string
	description string
}

func bindingGen() *rapid.Generator[domain.Binding] {
	return rapid.Custom(func(t *rapid.T) domain.Binding {
		bindType := rapid.SampledFrom([]domain.BindType{
			domain.BindDocumented, domain.BindStandard, domain.BindRelease, domain.BindMouse,
		}).Draw(t, "type")

		b := domain.Binding{
			Type: bindType,
			Modifiers: rapid.SliceOfNDistinct(
				rapid.SampledFrom([]string{"$mainMod", "SHIFT", "CTRL", "ALT"}),
				0, 3, rapid.ID[string]).Draw(t, "mods"),
			Key:      rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9]{0,6}|code:[0-9]{1,3}|mouse:27[0-9]`).Draw(t, "key"),
			Action:   rapid.StringMatching(`[a-z]{2,12}`).Draw(t, "action"),
			Params:   rapid.StringMatching(`([a-z0-9%+./-]+(,[a-z0-9%+./-]+){0,2})?`).Draw(t, "params"),
			Submap:   rapid.SampledFrom([]string{"", "", "resize", "move"}).Draw(t, "submap"),
			Category: rapid.SampledFrom([]string{"Apps", "System", "Media"}).Draw(t, "category"),
		}
		if b.Type == domain.BindDocumented {
			b.Description = rapid.StringMatching(`[a-z]+( [a-z]+){0,3}`).Draw(t, "description")
		}
		return b
	})
}

// For any config without slot collisions, parsing the serialized text yields
// the same set of (conflict key, action, params, description) tuples.
func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bindings := rapid.SliceOfN(bindingGen(), 1, 20).Draw(t, "bindings")

		cfg := domain.NewConfig()
		for _, b := range bindings {
			if _, taken := cfg.FindConflict(b); taken {
				continue
			}
			cfg.AddBinding(b)
		}

		reparsed := parser.ParseString(GenerateContent(cfg))

		original := tupleSet(cfg)
		recovered := tupleSet(reparsed)

		if len(original) != len(recovered) {
			t.Fatalf("binding count changed: %d -> %d", len(original), len(recovered))
		}
		for key, tuple := range original {
			got, ok := recovered[key]
			if !ok {
				t.Fatalf("binding lost in round trip: %+v", tuple)
			}
			if got != tuple {
				t.Fatalf("binding changed in round trip: %+v -> %+v", tuple, got)
			}
		}
	})
}

func tupleSet(cfg *domain.Config) map[domain.ConflictKey]bindingTuple {
	set := make(map[domain.ConflictKey]bindingTuple)
	for _, b := range cfg.AllBindings() {
		set[b.ConflictKey()] = bindingTuple{
			key:         b.ConflictKey(),
			action:      b.Action,
			params:      b.Params,
			description: b.Description,
		}
	}
	return set
}
