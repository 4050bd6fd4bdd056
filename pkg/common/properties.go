package common

import (
	"bufio"
	"io"
	"maps"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// very simple properties file handling, just comments and name=value

type Properties interface {
	GetString(key string, def string) string
	GetBool(key string, def bool) bool
	GetDecimal(key string, def decimal.Decimal) decimal.Decimal
	SetString(key string, value string)
	Clone() Properties
}

type properties struct {
	props map[string]string
}

func (p properties) GetString(key string, def string) string {
	key = strings.TrimSpace(key)
	v, ok := p.props[key]
	if !ok {
		return def
	}
	return v
}

func (p properties) GetBool(key string, def bool) bool {
	v, ok := p.props[strings.TrimSpace(key)]
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func (p properties) GetDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v, ok := p.props[strings.TrimSpace(key)]
	if !ok {
		return def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return def
	}
	return d
}

func (p properties) SetString(key string, value string) {
	key = strings.TrimSpace(key)
	p.props[key] = value
}

func (p properties) Clone() Properties {
	return properties{props: maps.Clone(p.props)}
}

func NewProperties(file string) (Properties, error) {
	inputFile, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer inputFile.Close()

	return NewPropertiesFromReader(inputFile)
}

func NewPropertiesFromReader(r io.Reader) (Properties, error) {
	p := properties{props: make(map[string]string)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		s := scanner.Text()
		if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "#") {
			continue
		}
		parts := strings.Split(s, "=")
		if len(parts) != 2 {
			continue
		}
		p.props[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return &p, nil
}
