package errors_test

import (
	"encoding/json"
	"fmt"

	"github.com/jmgilman/go/outcome/errors"
	"github.com/jmgilman/go/outcome/metadata"
)

func ExampleNew() {
	err := errors.New(errors.NotFound, "user not found")
	fmt.Println(err.Error())
	// Output: [NOT_FOUND] user not found
}

func ExampleNewf() {
	userID := "12345"
	err := errors.Newf(errors.NotFound, "user %s not found", userID)
	fmt.Println(err.Error())
	// Output: [NOT_FOUND] user 12345 not found
}

func ExampleWrap() {
	// Simulate database error
	dbErr := fmt.Errorf("connection refused")

	err := errors.Wrap(dbErr, errors.ServiceUnavailable, "failed to connect to database")

	fmt.Println(errors.GetType(err).ID())
	fmt.Println(err.Error())
	// Output:
	// SERVICE_UNAVAILABLE
	// [SERVICE_UNAVAILABLE] failed to connect to database: connection refused
}

func ExampleWithTag() {
	err := errors.New(errors.InternalError, "build failed")
	err = errors.WithTag(err, "project", "api")
	err = errors.WithTag(err, "phase", "test")

	fmt.Println(err.Metadata())
	// Output: {project=api, phase=test}
}

func ExampleWithMetadata() {
	err := errors.New(errors.InternalError, "execution failed")
	err = errors.WithMetadata(err, metadata.New(
		"command", "earthly",
		"exit_code", 1,
	))

	md := err.Metadata()
	fmt.Printf("Command: %s, Exit: %d\n",
		metadata.GetValueOrDefault(md, "command", ""),
		metadata.GetValueOrDefault(md, "exit_code", 0))
	// Output: Command: earthly, Exit: 1
}

func ExampleIsTransient() {
	fmt.Println(errors.IsTransient(errors.New(errors.Timeout, "operation timed out")))
	fmt.Println(errors.IsTransient(errors.New(errors.InvalidArgument, "bad input")))
	// Output:
	// true
	// false
}

func ExampleBuilder() {
	err, buildErr := errors.NewBuilder().
		WithDefinition(errors.Validation).
		WithMessage("request is invalid").
		WithInnerError(errors.New(errors.InvalidArgument, "name is required")).
		Build()
	if buildErr != nil {
		panic(buildErr)
	}

	fmt.Println(err.Error())
	// Output: [VALIDATION_FAILED] request is invalid: [INVALID_ARGUMENT] name is required
}

func ExampleFlatten() {
	err := errors.WithInner(errors.New(errors.Validation, "invalid"),
		errors.New(errors.InvalidArgument, "name is required"),
		errors.New(errors.InvalidArgument, "age must be positive"),
	)

	for _, e := range errors.Flatten(err) {
		fmt.Println(e.Definition().ID(), e.Message())
	}
	// Output:
	// VALIDATION_FAILED invalid
	// INVALID_ARGUMENT name is required
	// INVALID_ARGUMENT age must be positive
}

func ExampleToJSON() {
	err := errors.WithTag(errors.New(errors.NotFound, "user not found"), "user_id", "123")

	resp := errors.ToJSON(err)
	resp.InstanceID = "" // random per occurrence

	data, _ := json.Marshal(resp)
	fmt.Println(string(data))
	// Output: {"type":"NOT_FOUND","message":"user not found","severity":"ERROR","transient":false,"user_facing":true,"metadata":{"user_id":"123"}}
}
