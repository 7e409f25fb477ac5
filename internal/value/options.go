package value

import "context"

// FetchRequest is the request record consumed by systemFetch.
type FetchRequest struct {
	URL     string
	Body    *string
	Headers map[string]string
}

// FetchFunc retrieves a resource. A non-nil error is reported to scripts as
// a null response.
type FetchFunc func(ctx context.Context, req *FetchRequest) (string, error)

// Options is the context threaded through every built-in call. A nil
// *Options is valid and behaves like the zero value.
type Options struct {
	FetchFn FetchFunc
	LogFn   func(message string)
	URLFn   func(url string) string
	Debug   bool

	// Globals backs systemGlobalGet and systemGlobalSet.
	Globals map[string]Value

	// FetchLimit bounds concurrent requests within a single systemFetch
	// call. Values below 2 fetch sequentially.
	FetchLimit int

	// Context is handed to FetchFn. Background when unset.
	Context context.Context
}

func (o *Options) Ctx() context.Context {
	if o == nil || o.Context == nil {
		return context.Background()
	}
	return o.Context
}

// Log calls LogFn when one is configured.
func (o *Options) Log(message string) {
	if o != nil && o.LogFn != nil {
		o.LogFn(message)
	}
}

// DebugLog calls LogFn only in debug mode.
func (o *Options) DebugLog(message string) {
	if o != nil && o.Debug {
		o.Log(message)
	}
}
