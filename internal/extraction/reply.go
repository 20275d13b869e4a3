package extraction

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"shipsched/internal/domain"
)

// ReplyFields are the values the model picked.
type ReplyFields struct {
	Vessel string
	Voyage string
	ETD    string
	ETA    string
}

var jsonBlock = regexp.MustCompile(`\{[\s\S]*?\}`)

var replySchema = mustSchema(map[string]interface{}{
	"type":     "object",
	"required": []string{"vessel"},
	"properties": map[string]interface{}{
		"vessel": map[string]interface{}{"type": "string", "minLength": 1},
		"voyage": map[string]interface{}{"type": []string{"string", "null"}},
		"etd":    map[string]interface{}{"type": []string{"string", "null"}},
		"eta":    map[string]interface{}{"type": []string{"string", "null"}},
	},
	// at least one date must actually be filled in
	"anyOf": []interface{}{
		datePresent("etd"),
		datePresent("eta"),
	},
})

func datePresent(field string) map[string]interface{} {
	return map[string]interface{}{
		"required": []string{field},
		"properties": map[string]interface{}{
			field: map[string]interface{}{"type": "string", "minLength": 1},
		},
	}
}

func mustSchema(def map[string]interface{}) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(def))
	if err != nil {
		panic(fmt.Sprintf("reply schema: %v", err))
	}
	return schema
}

// ParseReply reads the first brace block of text. It never panics; every
// failure comes back as a *domain.ModelReplyError carrying the raw text.
func ParseReply(text string) (ReplyFields, *domain.ModelReplyError) {
	if strings.TrimSpace(text) == "" {
		return ReplyFields{}, &domain.ModelReplyError{Kind: domain.EmptyReply, RawResponse: text}
	}

	block := jsonBlock.FindString(text)
	if block == "" {
		return ReplyFields{}, &domain.ModelReplyError{Kind: domain.NoJSONFound, RawResponse: text}
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(block), &doc); err != nil {
		return ReplyFields{}, &domain.ModelReplyError{Kind: domain.MalformedJSON, RawResponse: text, Detail: err.Error()}
	}

	result, err := replySchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return ReplyFields{}, &domain.ModelReplyError{Kind: domain.MalformedJSON, RawResponse: text, Detail: err.Error()}
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return ReplyFields{}, &domain.ModelReplyError{
			Kind:        domain.MalformedJSON,
			RawResponse: text,
			Detail:      fmt.Sprintf("schema: %v", errs),
		}
	}

	return ReplyFields{
		Vessel: strings.TrimSpace(stringField(doc, "vessel")),
		Voyage: strings.TrimSpace(stringField(doc, "voyage")),
		ETD:    strings.TrimSpace(stringField(doc, "etd")),
		ETA:    strings.TrimSpace(stringField(doc, "eta")),
	}, nil
}

func stringField(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}
