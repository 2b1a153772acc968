package renderer

import (
	"github.com/okazmarkt/core/internal/catalog/registry"
	"github.com/okazmarkt/core/internal/catalog/schema"
)

// Form is the rendered widget tree for one category's posting flow.
type Form struct {
	Locale string     `json:"locale"`
	Steps  []StepView `json:"steps"`
}

type StepView struct {
	Key            string      `json:"key"`
	TitleKey       string      `json:"title_i18n_key,omitempty"`
	DescriptionKey string      `json:"description_i18n_key,omitempty"`
	Groups         []GroupView `json:"groups"`
}

type GroupView struct {
	Key            string        `json:"key"`
	TitleKey       string        `json:"title_i18n_key,omitempty"`
	DescriptionKey string        `json:"description_i18n_key,omitempty"`
	Layout         schema.Layout `json:"layout,omitempty"`
	Widgets        []Widget      `json:"widgets"`
}

// Widget is one renderable field descriptor with every lookup already
// resolved: the client applies locale bundles and draws, nothing more.
type Widget struct {
	FieldKey       string                 `json:"field_key"`
	FieldType      registry.FieldType     `json:"field_type,omitempty"`
	LabelKey       string                 `json:"label_i18n_key"`
	DescriptionKey string                 `json:"description_i18n_key,omitempty"`
	PlaceholderKey string                 `json:"placeholder_i18n_key,omitempty"`
	Required       bool                   `json:"required"`
	Unit           string                 `json:"unit,omitempty"`
	Min            *float64               `json:"min,omitempty"`
	Max            *float64               `json:"max,omitempty"`
	Step           *float64               `json:"step,omitempty"`
	Options        []registry.FieldOption `json:"options,omitempty"`
	Value          interface{}            `json:"value,omitempty"`

	// Missing marks a schema reference the registry cannot resolve. The
	// widget renders as an inert placeholder instead of breaking the form.
	Missing bool `json:"missing,omitempty"`
}

// Render interprets a category schema against the field registry and the
// form's current values. It is a pure function: no I/O, no mutation of its
// inputs, deterministic for a given snapshot of all four arguments.
func Render(cs *schema.CategorySchema, reg *registry.Registry, values map[string]interface{}, locale string) *Form {
	form := &Form{Locale: locale}
	if cs == nil {
		return form
	}
	for _, st := range cs.Steps {
		stepView := StepView{
			Key:            st.Key,
			TitleKey:       st.TitleKey,
			DescriptionKey: st.DescriptionKey,
		}
		for _, g := range st.Groups {
			groupView := GroupView{
				Key:            g.Key,
				TitleKey:       g.TitleKey,
				DescriptionKey: g.DescriptionKey,
				Layout:         g.Layout,
			}
			for _, ref := range g.Fields {
				// An unmet condition excludes the widget for this pass. The
				// validator decides requiredness at persistence time on its
				// own; this is display logic only.
				if !ref.Conditional.Met(values) {
					continue
				}
				groupView.Widgets = append(groupView.Widgets, renderWidget(ref, reg, values))
			}
			if len(groupView.Widgets) > 0 {
				stepView.Groups = append(stepView.Groups, groupView)
			}
		}
		if len(stepView.Groups) > 0 {
			form.Steps = append(form.Steps, stepView)
		}
	}
	return form
}

func renderWidget(ref schema.FieldRef, reg *registry.Registry, values map[string]interface{}) Widget {
	def, ok := reg.Lookup(ref.FieldKey)
	if !ok {
		// Configuration error, degraded: keep the slot visible so catalog
		// admins notice, but never fail the render.
		return Widget{
			FieldKey: ref.FieldKey,
			LabelKey: firstKey(ref.LabelKey, "catalog.field."+ref.FieldKey+".label"),
			Missing:  true,
		}
	}

	w := Widget{
		FieldKey:       ref.FieldKey,
		FieldType:      def.FieldType,
		LabelKey:       firstKey(ref.LabelKey, def.LabelKey, "catalog.field."+ref.FieldKey+".label"),
		DescriptionKey: firstKey(ref.DescriptionKey, def.DescriptionKey),
		PlaceholderKey: firstKey(ref.PlaceholderKey, "catalog.field."+ref.FieldKey+".placeholder"),
		Unit:           def.Unit,
		Min:            firstNum(ref.Min, def.MinValue),
		Max:            firstNum(ref.Max, def.MaxValue),
		Step:           ref.Step,
		Options:        def.Options,
		Value:          values[ref.FieldKey],
	}
	if ref.Optional != nil {
		w.Required = !*ref.Optional
	} else {
		w.Required = def.IsRequired
	}
	return w
}

func firstKey(keys ...string) string {
	for _, k := range keys {
		if k != "" {
			return k
		}
	}
	return ""
}

func firstNum(nums ...*float64) *float64 {
	for _, n := range nums {
		if n != nil {
			return n
		}
	}
	return nil
}
