package registry

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		reg := New()

		reg.Register("ping", func(context.Context, ...any) (any, error) {
			return "pong", nil
		})

		Convey("Then the handler can be resolved", func() {
			handler, ok := reg.Resolve("ping")
			So(ok, ShouldBeTrue)

			result, err := handler(context.Background())
			So(err, ShouldBeNil)
			So(result, ShouldEqual, "pong")
		})
	})
}

func TestResolve(t *testing.T) {
	Convey("Given a registry with a method", t, func() {
		reg := New().Register("ping", func(context.Context, ...any) (any, error) {
			return "pong", nil
		})

		Convey("When resolving an unknown method", func() {
			handler, ok := reg.Resolve("pong")

			Convey("Then it should not exist", func() {
				So(ok, ShouldBeFalse)
				So(handler, ShouldBeNil)
			})
		})
	})
}

func TestMethods(t *testing.T) {
	Convey("Given a registry with several methods", t, func() {
		noop := func(context.Context, ...any) (any, error) { return nil, nil }
		reg := New().
			Register("kv.put", noop).
			Register("add", noop).
			Register("ping", noop)

		Convey("Then Methods returns the sorted names", func() {
			So(reg.Methods(), ShouldResemble, []string{"add", "kv.put", "ping"})
		})
	})
}
