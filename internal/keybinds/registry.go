package keybinds

import (
	"sort"
	"strings"
)

// Binding represents a keybinding mapping
type Binding struct {
	Key     string
	Action  Action
	Context Context
}

// Registry manages keybinding mappings and matching
type Registry struct {
	// bindings maps context -> key -> action
	bindings map[Context]map[string]Action

	// parents maps a context to the context it falls back to.
	// Every chain ends at ContextGlobal.
	parents map[Context]Context
}

// NewRegistry creates a new keybinding registry
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[Context]map[string]Action),
		parents:  make(map[Context]Context),
	}
}

// Register adds a keybinding to the registry
func (r *Registry) Register(context Context, key string, action Action) {
	if r.bindings[context] == nil {
		r.bindings[context] = make(map[string]Action)
	}
	r.bindings[context][key] = action
}

// RegisterMultiple registers multiple keybindings for the same action
func (r *Registry) RegisterMultiple(context Context, keys []string, action Action) {
	for _, key := range keys {
		r.Register(context, key, action)
	}
}

// SetParent makes context fall back to parent when a key is unbound
func (r *Registry) SetParent(context, parent Context) {
	r.parents[context] = parent
}

// Parent returns the fallback context. Contexts without an explicit parent
// fall back to ContextGlobal; ContextGlobal has none.
func (r *Registry) Parent(context Context) (Context, bool) {
	if context == ContextGlobal {
		return "", false
	}
	if parent, ok := r.parents[context]; ok {
		return parent, true
	}
	return ContextGlobal, true
}

// chain returns context followed by its ancestors, ending with ContextGlobal
func (r *Registry) chain(context Context) []Context {
	out := []Context{context}
	seen := map[Context]bool{context: true}
	for {
		parent, ok := r.Parent(context)
		if !ok || seen[parent] {
			return out
		}
		out = append(out, parent)
		seen[parent] = true
		context = parent
	}
}

// Match attempts to match a key to an action in the given context.
// The context is checked first, then each ancestor up to global.
func (r *Registry) Match(context Context, key string) (Action, bool) {
	for _, ctx := range r.chain(context) {
		if action, ok := r.bindings[ctx][key]; ok {
			return action, true
		}
	}
	return "", false
}

// GetBinding returns the key(s) bound to an action in a context, sorted.
// The nearest context in the chain that binds the action wins.
func (r *Registry) GetBinding(context Context, action Action) []string {
	for _, ctx := range r.chain(context) {
		var keys []string
		for key, act := range r.bindings[ctx] {
			if act == action {
				keys = append(keys, key)
			}
		}
		if len(keys) > 0 {
			sort.Strings(keys)
			return keys
		}
	}
	return nil
}

// GetBindingString returns a human-readable string of keys bound to an action
func (r *Registry) GetBindingString(context Context, action Action) string {
	keys := r.GetBinding(context, action)
	if len(keys) == 0 {
		return "unbound"
	}
	return strings.Join(keys, "/")
}

// ListBindings returns all bindings visible from a context, sorted by
// context (nearest first) and key. Shadowed bindings are omitted.
func (r *Registry) ListBindings(context Context) []Binding {
	var bindings []Binding
	seen := make(map[string]bool)

	for _, ctx := range r.chain(context) {
		keys := make([]string, 0, len(r.bindings[ctx]))
		for key := range r.bindings[ctx] {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if seen[key] {
				continue
			}
			seen[key] = true
			bindings = append(bindings, Binding{
				Key:     key,
				Action:  r.bindings[ctx][key],
				Context: ctx,
			})
		}
	}

	return bindings
}

// Contexts returns every context that has bindings, sorted
func (r *Registry) Contexts() []Context {
	contexts := make([]Context, 0, len(r.bindings))
	for ctx := range r.bindings {
		contexts = append(contexts, ctx)
	}
	sort.Slice(contexts, func(i, j int) bool { return contexts[i] < contexts[j] })
	return contexts
}
