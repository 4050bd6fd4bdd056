package common

import (
	"bufio"
	"os"
	"strings"
	"sync"
)

// SymbolRegistry is the symbol-registration cache: a process-scoped lookup of
// display value to Symbol. It is injected into whatever needs it rather than
// accessed as a global so the factory stays testable in isolation.
type SymbolRegistry struct {
	sync.RWMutex
	byValue map[string]Symbol
}

func NewSymbolRegistry() *SymbolRegistry {
	return &SymbolRegistry{byValue: make(map[string]Symbol)}
}

func (r *SymbolRegistry) Set(value string, symbol Symbol) {
	r.Lock()
	defer r.Unlock()

	r.byValue[value] = symbol
}

func (r *SymbolRegistry) Get(value string) (Symbol, bool) {
	r.RLock()
	defer r.RUnlock()

	s, ok := r.byValue[value]
	return s, ok
}

func (r *SymbolRegistry) Values() []string {
	r.RLock()
	defer r.RUnlock()

	var values []string
	for v := range r.byValue {
		values = append(values, v)
	}
	return values
}

func (r *SymbolRegistry) Len() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.byValue)
}

// Load reads a symbol universe from a file, see configs/symbols.txt for the
// format: one "value market type" triple per line.
func (r *SymbolRegistry) Load(filepath string) error {
	inputFile, err := os.Open(filepath)
	if err != nil {
		return err
	}
	defer inputFile.Close()

	scanner := bufio.NewScanner(inputFile)
	for scanner.Scan() {
		s := scanner.Text()
		if strings.HasPrefix(s, "//") || strings.HasPrefix(s, "#") {
			continue
		}
		if s == "" {
			continue
		}
		parts := strings.Fields(s)
		if len(parts) == 3 {
			symbol := NewSymbol(parts[0], parts[1], SecurityType(parts[2]))
			r.Set(symbol.Value(), symbol)
		}
	}
	return scanner.Err()
}
