package comment

// LoadResult is the outcome of a single feed load.
// Exactly one of Comments or Err is meaningful: when Err is nil the load
// succeeded and Comments holds the feed in server order (possibly empty).
type LoadResult struct {
	Comments []Comment
	Err      error
}

// Task is a handle on one in-flight load.
type Task interface {
	// Cancel stops the load. A cancelled load never calls its completion.
	// Calling Cancel more than once, or after completion, does nothing.
	Cancel()
}

// Loader loads a comments feed asynchronously.
type Loader interface {
	// Load starts a load and returns immediately. completion is called at
	// most once, on a goroutine chosen by the implementation.
	Load(completion func(LoadResult)) Task
}
