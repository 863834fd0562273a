// Package presentation turns comment feed loads into view state changes.
package presentation

import (
	"sync"

	"github.com/evcraddock/image-comments/internal/comment"
	"github.com/evcraddock/image-comments/internal/localization"
)

// State is the load state of a ViewModel.
type State int

const (
	// StateIdle means no load has started, or the latest one was cancelled.
	StateIdle State = iota
	// StateLoading means the latest load is in flight.
	StateLoading
	// StateSettled means the latest load completed.
	StateSettled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSettled:
		return "settled"
	default:
		return "idle"
	}
}

// Title returns the localized screen title from the default string table.
func Title() string {
	return localization.Default().Lookup(localization.KeyTitle)
}

// ViewModel drives the image comments screen.
//
// Each event channel holds at most one handler. Subscribing again replaces
// the previous handler, and events emitted while no handler is attached are
// dropped. Handlers may be called from the loader's goroutine.
type ViewModel struct {
	loader  comment.Loader
	strings localization.Table

	mu         sync.Mutex
	task       comment.Task
	generation int
	state      State

	onLoadingStateChange func(bool)
	onErrorStateChange   func(string)
	onFeedLoad           func([]comment.Comment)
}

// Option configures a ViewModel.
type Option func(*ViewModel)

// WithStrings sets the string table used for user-facing messages.
func WithStrings(t localization.Table) Option {
	return func(vm *ViewModel) {
		vm.strings = t
	}
}

// New creates a ViewModel that loads comments with loader.
func New(loader comment.Loader, opts ...Option) *ViewModel {
	vm := &ViewModel{
		loader:  loader,
		strings: localization.Default(),
	}
	for _, o := range opts {
		o(vm)
	}
	return vm
}

// Title returns the localized screen title from the ViewModel's table.
func (vm *ViewModel) Title() string {
	return vm.strings.Lookup(localization.KeyTitle)
}

// OnLoadingStateChange sets the handler for loading state changes.
func (vm *ViewModel) OnLoadingStateChange(fn func(isLoading bool)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.onLoadingStateChange = fn
}

// OnErrorStateChange sets the handler for load error messages.
func (vm *ViewModel) OnErrorStateChange(fn func(message string)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.onErrorStateChange = fn
}

// OnFeedLoad sets the handler for loaded comments.
func (vm *ViewModel) OnFeedLoad(fn func(comments []comment.Comment)) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.onFeedLoad = fn
}

// State returns the state of the most recently started load.
func (vm *ViewModel) State() State {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.state
}

// Load starts a new load. A load already in flight is not cancelled, but
// only the new one can be cancelled through CancelLoadIfNeeded.
func (vm *ViewModel) Load() {
	vm.mu.Lock()
	vm.generation++
	generation := vm.generation
	vm.state = StateLoading
	onLoading := vm.onLoadingStateChange
	vm.mu.Unlock()

	if onLoading != nil {
		onLoading(true)
	}

	task := vm.loader.Load(func(result comment.LoadResult) {
		vm.complete(generation, result)
	})

	vm.mu.Lock()
	if vm.generation == generation {
		vm.task = task
	}
	vm.mu.Unlock()
}

// CancelLoadIfNeeded cancels the most recently started load, if any.
func (vm *ViewModel) CancelLoadIfNeeded() {
	vm.mu.Lock()
	task := vm.task
	if task != nil && vm.state == StateLoading {
		vm.state = StateIdle
	}
	vm.mu.Unlock()

	if task != nil {
		task.Cancel()
	}
}

func (vm *ViewModel) complete(generation int, result comment.LoadResult) {
	vm.mu.Lock()
	if vm.generation == generation && vm.state == StateLoading {
		vm.state = StateSettled
	}
	onLoading := vm.onLoadingStateChange
	onError := vm.onErrorStateChange
	onFeed := vm.onFeedLoad
	vm.mu.Unlock()

	if onLoading != nil {
		onLoading(false)
	}

	if result.Err != nil {
		if onError != nil {
			onError(vm.strings.Lookup(localization.KeyLoadError))
		}
		return
	}

	if onFeed != nil {
		onFeed(result.Comments)
	}
}
