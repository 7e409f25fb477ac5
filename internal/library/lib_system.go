package library

import (
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"barescript/internal/value"
)

func fnSystemBoolean() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		return value.NewBool(value.Bool(a[0]))
	}}
}

func fnSystemCompare() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		return num(value.Compare(a[0], a[1]))
	}}
}

// fetchRequest converts a URL string or request object into a FetchRequest.
// Objects may only carry the keys url, body and headers.
func fetchRequest(v value.Value) (*value.FetchRequest, error) {
	if s, ok := asString(v); ok {
		return &value.FetchRequest{URL: s}, nil
	}
	obj, ok := asObject(v)
	if !ok {
		return nil, fmt.Errorf("invalid fetch request %s", value.String(v))
	}

	req := &value.FetchRequest{}
	for _, key := range obj.Keys() {
		member, _ := obj.Get(key)
		switch key {
		case "url":
			if req.URL, ok = asString(member); !ok {
				return nil, fmt.Errorf("invalid fetch request url %s", value.String(member))
			}
		case "body":
			body, ok := asString(member)
			if !ok {
				return nil, fmt.Errorf("invalid fetch request body %s", value.String(member))
			}
			req.Body = &body
		case "headers":
			headers, ok := asObject(member)
			if !ok {
				return nil, fmt.Errorf("invalid fetch request headers %s", value.String(member))
			}
			req.Headers = make(map[string]string, headers.Len())
			for _, name := range headers.Keys() {
				header, _ := headers.Get(name)
				if req.Headers[name], ok = asString(header); !ok {
					return nil, fmt.Errorf("invalid fetch request header %q", name)
				}
			}
		default:
			return nil, fmt.Errorf("unknown fetch request member %q", key)
		}
	}
	if !obj.Has("url") {
		return nil, fmt.Errorf("fetch request missing url")
	}
	return req, nil
}

// fetchOne calls the host fetch function. Errors and panics become a null
// response.
func fetchOne(opts *Options, req *value.FetchRequest) (response value.Value) {
	if opts == nil || opts.FetchFn == nil {
		return value.NIL
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("systemFetch panicked", slog.String("url", req.URL), slog.Any("panic", r))
			response = value.NIL
		}
	}()

	text, err := opts.FetchFn(opts.Ctx(), req)
	if err != nil {
		slog.Debug("systemFetch failed", slog.String("url", req.URL), slog.Any("error", err))
		return value.NIL
	}
	return value.NewString(text)
}

// fetchAll fetches every request, concurrently when FetchLimit allows.
// Responses are stored by request index.
func fetchAll(opts *Options, requests []*value.FetchRequest) []value.Value {
	responses := make([]value.Value, len(requests))
	limit := 1
	if opts != nil {
		limit = opts.FetchLimit
	}
	if limit < 2 || len(requests) < 2 {
		for ix, req := range requests {
			responses[ix] = fetchOne(opts, req)
		}
		return responses
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for ix, req := range requests {
		g.Go(func() error {
			responses[ix] = fetchOne(opts, req)
			return nil
		})
	}
	_ = g.Wait()
	return responses
}

func fnSystemFetch() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)

		var items []value.Value
		array, isArray := asArray(a[0])
		if isArray {
			items = array.Elements
		} else {
			items = []value.Value{a[0]}
		}
		requests := make([]*value.FetchRequest, len(items))
		for ix, item := range items {
			req, err := fetchRequest(item)
			if err != nil {
				slog.Debug("systemFetch invalid request", slog.Any("error", err))
				return value.NIL
			}
			if opts != nil && opts.URLFn != nil {
				req.URL = opts.URLFn(req.URL)
			}
			requests[ix] = req
		}

		responses := fetchAll(opts, requests)
		for ix, response := range responses {
			if value.IsNull(response) {
				opts.DebugLog(fmt.Sprintf("BareScript: Function \"systemFetch\" failed for resource \"%s\"", requests[ix].URL))
			}
		}

		if isArray {
			return value.NewArray(responses...)
		}
		return responses[0]
	}}
}

func fnSystemGlobalGet() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		defaultValue := orNull(a[1])
		name, ok := asString(a[0])
		if !ok || opts == nil || opts.Globals == nil {
			return defaultValue
		}

		v, ok := opts.Globals[name]
		if !ok {
			return defaultValue
		}
		return orNull(v)
	}}
}

func fnSystemGlobalSet() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		name, ok := asString(a[0])
		if !ok {
			return value.NIL
		}

		v := orNull(a[1])
		if opts != nil {
			if opts.Globals == nil {
				opts.Globals = map[string]value.Value{}
			}
			opts.Globals[name] = v
		}
		return v
	}}
}

func fnSystemIs() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, nil)
		return value.NewBool(value.Is(a[0], a[1]))
	}}
}

func fnSystemLog() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		opts.Log(value.String(a[0]))
		return value.NIL
	}}
}

func fnSystemLogDebug() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		opts.DebugLog(value.String(a[0]))
		return value.NIL
	}}
}

// systemPartial binds leading arguments. Arguments passed to the returned
// function are appended after the bound ones.
func fnSystemPartial() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a, bound := DefaultArgsRest(args, nil)
		fn, ok := asFunction(a[0])
		if !ok || len(bound) < 1 {
			return value.NIL
		}

		return &value.Function{Name: fn.Name, Fn: func(extra []value.Value, opts *Options) value.Value {
			return fn.Call(append(slices.Clone(bound), extra...), opts)
		}}
	}}
}

func fnSystemType() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		return value.NewString(string(value.TypeOf(a[0])))
	}}
}
