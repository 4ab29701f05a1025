package jsonl

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/go-sif/sieve"
	"github.com/go-sif/sieve/errors"
	"github.com/go-sif/sieve/rule"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines rule definitions
type ParserConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of the stream. Defaults to 0.
	Comment       rune // Lines beginning with the comment character are ignored. Defaults to no comment character.
	MaxBufferSize int  // Maximum size in bytes of the buffer used to read lines from the stream
}

// Parser produces Rules from JSONL rule definitions
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser. Each line must carry a string name,
// and may carry a properties object whose members become the rule's dimension
// values. JSON numbers parse as float64, the way gjson reports them.
func CreateParser(conf *ParserConf) *Parser {
	if conf == nil {
		conf = &ParserConf{}
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL rule definitions to produce Rules
func (p *Parser) Parse(r io.Reader) ([]sieve.Rule, error) {
	// start parsing by creating a scanner
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), p.conf.MaxBufferSize)
	// ignore header lines, if configured to do so
	for i := 0; i < p.conf.HeaderLines; i++ {
		scanner.Scan()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	rules := make([]sieve.Rule, 0)
	line := p.conf.HeaderLines
	for scanner.Scan() {
		line++
		definition := scanner.Text()
		if len(strings.TrimSpace(definition)) == 0 {
			continue
		}
		if p.conf.Comment != 0 {
			first, _ := utf8.DecodeRuneInString(definition)
			if first == p.conf.Comment {
				continue
			}
		}
		parsed, err := parseRule(definition, line)
		if err != nil {
			return nil, err
		}
		rules = append(rules, parsed)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

// parseRule parses a single rule definition line
func parseRule(definition string, line int) (sieve.Rule, error) {
	if !gjson.Valid(definition) {
		return nil, errors.InvalidRuleDefinitionError{Line: line, Reason: "not valid JSON"}
	}
	parsed := gjson.Parse(definition)
	name := parsed.Get("name")
	if name.Type != gjson.String {
		return nil, errors.InvalidRuleDefinitionError{Line: line, Reason: "name is required and must be a string"}
	}
	properties := make(map[string]interface{})
	propsResult := parsed.Get("properties")
	if propsResult.Exists() {
		if !propsResult.IsObject() {
			return nil, errors.InvalidRuleDefinitionError{Line: line, Reason: "properties must be an object"}
		}
		propsResult.ForEach(func(key, value gjson.Result) bool {
			properties[key.String()] = value.Value()
			return true
		})
	}
	return rule.CreatePropertyRule(name.String(), properties)
}
