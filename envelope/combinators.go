package envelope

import (
	"github.com/jmgilman/go/outcome/code"
	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/result"
)

// Map applies fn to the value of a success. A failure is recast without
// calling fn. Code, messages, headers, stream and metadata are kept.
func Map[V, U any](e Envelope[V], fn func(V) U) Envelope[U] {
	out := recast[V, U](e)
	if e.IsSuccess() {
		out.value = fn(e.value)
	}
	return out
}

// Bind chains an operation returning an Envelope. A failure is recast
// without calling fn. On success the Envelope from fn is returned with e's
// messages placed before its own.
func Bind[V, U any](e Envelope[V], fn func(V) Envelope[U]) Envelope[U] {
	if e.IsFailure() {
		return recast[V, U](e)
	}
	next := fn(e.value)
	if len(e.messages) > 0 {
		next.messages = append(cloneOrNil(e.messages), next.messages...)
	}
	return next
}

// Match calls exactly one of onSuccess or onFailure and returns its result.
func Match[V, U any](e Envelope[V], onSuccess func(V) U, onFailure func([]errors.ErrorInfo) U) U {
	if e.IsSuccess() {
		return onSuccess(e.value)
	}
	return onFailure(e.Errors())
}

// ToResult drops the code and transport data.
func (e Envelope[V]) ToResult() result.Result[V] {
	if e.IsSuccess() {
		return result.Success(e.value, e.messages...)
	}
	return result.Failure[V](e.errs...).WithMessages(e.messages...)
}

// FromResult wraps a Result, using successCode or failureCode depending on
// its state. A nil code falls back to code.Success or code.General.
func FromResult[V any](r result.Result[V], successCode, failureCode code.Code) Envelope[V] {
	b := NewBuilder[V]().WithMessages(r.Messages()...)
	if r.IsSuccess() {
		if successCode == nil {
			successCode = code.Success
		}
		return b.WithCode(successCode).WithValue(r.Value()).Build()
	}
	if failureCode == nil {
		failureCode = code.General
	}
	return b.WithCode(failureCode).WithErrors(r.Errors()...).Build()
}

func recast[V, U any](e Envelope[V]) Envelope[U] {
	return Envelope[U]{
		code:     e.code,
		messages: e.messages,
		errs:     e.errs,
		headers:  e.headers,
		stream:   e.stream,
		metadata: e.metadata,
	}
}
