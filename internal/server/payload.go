package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jesses-code-adventures/cms/internal/billing"
)

const msgNotJSON = "Request must be JSON"

//go:embed schemas/*.json
var schemaFS embed.FS

// moneyFields accept numbers or loosely formatted strings such as "1,60,000".
var moneyFields = []string{
	"bill_amount", "amount_paid", "amount", "budget", "actual_cost",
	"contract_value", "salary", "unit_price", "stock_quantity",
}

type validator struct {
	schemas map[string]*jsonschema.Schema
}

func newValidator() (*validator, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		data, err := schemaFS.ReadFile(path.Join("schemas", e.Name()))
		if err != nil {
			return nil, err
		}
		if err := compiler.AddResource(e.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", e.Name(), err)
		}
		names = append(names, e.Name())
	}

	v := &validator{schemas: make(map[string]*jsonschema.Schema, len(names))}
	for _, name := range names {
		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		v.schemas[strings.TrimSuffix(name, ".json")] = schema
	}
	return v, nil
}

func (v *validator) validate(name string, doc any) error {
	schema, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("no schema named %s", name)
	}
	return schema.Validate(doc)
}

// bindJSON validates the body against the named schema, normalises loose
// values and decodes it into dst. It writes the 400 response itself.
func (s *Server) bindJSON(c *gin.Context, schema string, dst any) bool {
	if c.ContentType() != gin.MIMEJSON {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgNotJSON})
		return false
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgNotJSON})
		return false
	}
	// Numbers stay json.Number so amounts never pass through a float.
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil || doc == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msgNotJSON})
		return false
	}

	if err := s.validator.validate(schema, doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + validationMessage(err)})
		return false
	}

	normalize(doc)
	clean, err := json.Marshal(doc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return false
	}
	if err := json.Unmarshal(clean, dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request: " + err.Error()})
		return false
	}
	return true
}

// normalize drops empty optional values and coerces amounts and experience
// strings to the shapes the models decode.
func normalize(doc map[string]any) {
	for k, v := range doc {
		if v == nil {
			delete(doc, k)
			continue
		}
		if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
			delete(doc, k)
		}
	}
	for _, k := range moneyFields {
		if v, ok := doc[k]; ok {
			doc[k] = billing.ParseAmount(v).String()
		}
	}
	if s, ok := doc["experience_years"].(string); ok {
		if n, ok := leadingInt(s); ok {
			doc["experience_years"] = n
		} else {
			delete(doc, "experience_years")
		}
	}
}

// leadingInt reads the number at the start of values like "7 Years".
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	return n, err == nil
}

func validationMessage(err error) string {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	if leaf.InstanceLocation != "" {
		return strings.TrimPrefix(leaf.InstanceLocation, "/") + ": " + leaf.Message
	}
	return leaf.Message
}
