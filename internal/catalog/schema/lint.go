package schema

import (
	"go.uber.org/zap"

	"github.com/okazmarkt/core/internal/catalog/registry"
)

// LintIssue is one schema/registry consistency finding.
type LintIssue struct {
	CategoryType CategoryType `json:"category_type"`
	FieldKey     string       `json:"field_key"`
	Code         string       `json:"code"`
	Detail       string       `json:"detail"`
}

const (
	LintMissingField  = "schema_field_missing_in_registry"
	LintForeignDomain = "schema_field_outside_domain"
	LintHiddenField   = "required_field_not_in_schema"
)

// Lint cross-checks every stored schema against the field registry. Issues are
// warnings, not errors: a required field absent from the schema is legitimate
// when the server computes it, and a missing registry field renders as a
// placeholder until the catalog overlay catches up.
func (s *Store) Lint(reg *registry.Registry) []LintIssue {
	var issues []LintIssue
	for ctype, cs := range s.schemas {
		domain := ctype.Domain()
		referenced := make(map[string]struct{})
		for _, key := range cs.FieldKeys() {
			referenced[key] = struct{}{}
			def, ok := reg.Lookup(key)
			if !ok {
				issues = append(issues, LintIssue{
					CategoryType: ctype, FieldKey: key, Code: LintMissingField,
					Detail: "schema references a field key the registry does not define",
				})
				continue
			}
			if def.Domain != "" && def.Domain != domain {
				issues = append(issues, LintIssue{
					CategoryType: ctype, FieldKey: key, Code: LintForeignDomain,
					Detail: "schema references a field scoped to domain " + def.Domain,
				})
			}
		}
		for _, def := range reg.ForDomain(domain) {
			if !def.IsRequired || def.Domain == "" {
				continue
			}
			if _, ok := referenced[def.FieldKey]; !ok {
				issues = append(issues, LintIssue{
					CategoryType: ctype, FieldKey: def.FieldKey, Code: LintHiddenField,
					Detail: "field is required but no schema step collects it",
				})
			}
		}
	}
	return issues
}

// LogLint runs Lint and reports each finding through the logger.
func (s *Store) LogLint(reg *registry.Registry, logger *zap.Logger) int {
	issues := s.Lint(reg)
	for _, issue := range issues {
		logger.Warn("catalog schema lint",
			zap.String("category_type", string(issue.CategoryType)),
			zap.String("field_key", issue.FieldKey),
			zap.String("code", issue.Code),
			zap.String("detail", issue.Detail),
		)
	}
	return len(issues)
}
