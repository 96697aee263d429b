package llm

import "fmt"

// ProviderFactory builds a concrete Provider instance.
type ProviderFactory func() (Provider, error)

// factories by provider name; implementations register from init
var providers = make(map[string]ProviderFactory)

// RegisterProvider makes a factory available under the given name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewProvider instantiates the provider registered under name.
func NewProvider(name string) (Provider, error) {
	factory, ok := providers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
	return factory()
}
