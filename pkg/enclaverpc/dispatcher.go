// Copyright 2025 The Trustplane Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package enclaverpc

import (
	"github.com/enclaveproto/trustplane/pkg/codec"
	"github.com/enclaveproto/trustplane/pkg/consensus/keymanager"
	"github.com/enclaveproto/trustplane/pkg/log"
	"github.com/enclaveproto/trustplane/pkg/metrics"
	"github.com/enclaveproto/trustplane/pkg/private/prom"
	"github.com/enclaveproto/trustplane/pkg/private/serrors"
	"github.com/enclaveproto/trustplane/pkg/sgx"
)

// MethodDescriptor is the descriptor of an RPC API method.
type MethodDescriptor struct {
	// Name is the unique method name.
	Name string
	// Kind specifies which kind of RPC is allowed to call the method.
	Kind Kind
}

// Handler is the typed handler of a single RPC method.
type Handler[Rq, Rsp any] func(ctx *Context, rq *Rq) (Rsp, error)

// methodDispatch is the type-erased boundary between the registry and the
// typed method handlers.
type methodDispatch interface {
	descriptor() MethodDescriptor
	dispatch(ctx *Context, request *Request) (*Response, error)
}

type typedDispatch[Rq, Rsp any] struct {
	desc    MethodDescriptor
	handler Handler[Rq, Rsp]
}

func (d *typedDispatch[Rq, Rsp]) descriptor() MethodDescriptor {
	return d.desc
}

func (d *typedDispatch[Rq, Rsp]) dispatch(ctx *Context, request *Request) (*Response, error) {
	var rq Rq
	if err := codec.Unmarshal(request.Args, &rq); err != nil {
		return nil, serrors.Wrap("malformed request arguments", err, "method", request.Method)
	}
	rsp, err := d.handler(ctx, &rq)
	if err != nil {
		return nil, err
	}
	value, err := codec.Marshal(rsp)
	if err != nil {
		return nil, serrors.Wrap("marshaling response", err, "method", request.Method)
	}
	return successResponse(value), nil
}

// Method binds a method descriptor to a type-erased handler.
type Method struct {
	dispatch methodDispatch
}

// NewMethod creates a new method. The argument and result types of the
// handler are encoded and decoded with the module's canonical codec.
func NewMethod[Rq, Rsp any](desc MethodDescriptor, handler Handler[Rq, Rsp]) Method {
	return Method{
		dispatch: &typedDispatch[Rq, Rsp]{
			desc:    desc,
			handler: handler,
		},
	}
}

// Name returns the method name.
func (m Method) Name() string {
	return m.dispatch.descriptor().Name
}

// Kind returns the RPC kind the method requires.
func (m Method) Kind() Kind {
	return m.dispatch.descriptor().Kind
}

// ContextInitializer is a hook that customizes the fresh Context of each
// dispatched request before routing.
type ContextInitializer interface {
	// Init is called to initialize the context.
	Init(ctx *Context)
}

// ContextInitializerFunc adapts a plain function to the ContextInitializer
// interface.
type ContextInitializerFunc func(ctx *Context)

// Init implements ContextInitializer.
func (f ContextInitializerFunc) Init(ctx *Context) {
	f(ctx)
}

// KeyManagerPolicyHandler is the key manager policy update callback.
type KeyManagerPolicyHandler func(policy keymanager.SignedPolicySGX)

// KeyManagerQuotePolicyHandler is the key manager quote policy update
// callback.
type KeyManagerQuotePolicyHandler func(policy sgx.QuotePolicy)

// Dispatcher authorizes and routes RPC requests to registered methods.
//
// Registration must complete before the dispatcher starts serving; after
// that the dispatcher is immutable and safe for concurrent use without
// locking. Each Dispatch call operates on its own Context.
type Dispatcher struct {
	methods              map[string]Method
	ctxInitializer       ContextInitializer
	kmPolicyHandler      KeyManagerPolicyHandler
	kmQuotePolicyHandler KeyManagerQuotePolicyHandler

	logger log.Logger
}

// NewDispatcher creates a new RPC dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		methods: make(map[string]Method),
		logger:  log.New("component", "enclaverpc/dispatcher"),
	}
}

// AddMethod registers a new method in the dispatcher. Registering a method
// with an already registered name replaces the previous registration.
func (d *Dispatcher) AddMethod(method Method) {
	d.methods[method.Name()] = method
}

// SetContextInitializer configures the context initializer, replacing any
// previously configured one.
func (d *Dispatcher) SetContextInitializer(initializer ContextInitializer) {
	d.ctxInitializer = initializer
}

// Dispatch dispatches a request that arrived over a channel of the given
// kind. It always returns a well-formed response; any failure is reported
// through the response's error body.
func (d *Dispatcher) Dispatch(ctx *Context, request *Request, kind Kind) *Response {
	if d.ctxInitializer != nil {
		d.ctxInitializer.Init(ctx)
	}

	rsp, result := d.dispatchFallible(ctx, request, kind)
	metrics.CounterInc(dispatches.With(prom.LabelResult, result))
	return rsp
}

func (d *Dispatcher) dispatchFallible(
	ctx *Context,
	request *Request,
	kind Kind,
) (*Response, string) {
	method, ok := d.methods[request.Method]
	if !ok {
		return errorResponse(serrors.New("method not found",
			"method", request.Method)), prom.ErrNotFound
	}

	if !kindAllowed(method.Kind(), kind) {
		return errorResponse(serrors.New("invalid RPC kind",
			"method", request.Method, "kind", kind)), prom.ErrKind
	}

	rsp, err := method.dispatch.dispatch(ctx, request)
	if err != nil {
		d.logger.Debug("request dispatch failed",
			"method", request.Method,
			"err", err,
		)
		return errorResponse(err), prom.ErrHandler
	}
	return rsp, prom.Success
}

// kindAllowed is the closed compatibility relation between the kind a
// method requires and the kind of the channel a request arrived on. Methods
// requiring an authenticated session are never reachable unauthenticated,
// insecure queries are additionally reachable over an authenticated
// session, and local queries are never reachable remotely.
func kindAllowed(method, channel Kind) bool {
	switch {
	case method == KindNoiseSession && channel == KindNoiseSession:
	case method == KindInsecureQuery && channel == KindNoiseSession:
	case method == KindInsecureQuery && channel == KindInsecureQuery:
	case method == KindLocalQuery && channel == KindLocalQuery:
	default:
		return false
	}
	return true
}

// HandleKMPolicyUpdate routes a key manager policy update to the registered
// callback. Without a registered callback this is a no-op.
func (d *Dispatcher) HandleKMPolicyUpdate(policy keymanager.SignedPolicySGX) {
	if d.kmPolicyHandler != nil {
		d.kmPolicyHandler(policy)
	}
}

// HandleKMQuotePolicyUpdate routes a key manager quote policy update to the
// registered callback. Without a registered callback this is a no-op.
func (d *Dispatcher) HandleKMQuotePolicyUpdate(policy sgx.QuotePolicy) {
	if d.kmQuotePolicyHandler != nil {
		d.kmQuotePolicyHandler(policy)
	}
}

// SetKeyManagerPolicyUpdateHandler installs the key manager policy update
// callback. Passing nil clears it.
func (d *Dispatcher) SetKeyManagerPolicyUpdateHandler(f KeyManagerPolicyHandler) {
	d.kmPolicyHandler = f
}

// SetKeyManagerQuotePolicyUpdateHandler installs the key manager quote
// policy update callback. Passing nil clears it.
func (d *Dispatcher) SetKeyManagerQuotePolicyUpdateHandler(f KeyManagerQuotePolicyHandler) {
	d.kmQuotePolicyHandler = f
}
