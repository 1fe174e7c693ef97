package libemit_test

import (
	"fmt"

	"github.com/sonirico/libemit"
)

type User struct {
	Name  string
	Email string
}

var UserRegistered = libemit.NewKey[User]("userRegistered")

func ExampleEventEmitter() {
	emitter := libemit.NewEventEmitter[string, int]()

	_, unsubscribe := emitter.OnFunc("tick", func(n int) {
		fmt.Println("tick", n)
	})
	emitter.OnceFunc("tick", func(n int) {
		fmt.Println("first tick only", n)
	})

	emitter.Emit("tick", 1)
	emitter.Emit("tick", 2)
	unsubscribe()
	emitter.Emit("tick", 3)

	// Output:
	// tick 1
	// first tick only 1
	// tick 2
}

func ExampleBus() {
	bus := libemit.NewBus()
	defer bus.Close()

	libemit.OnFunc(bus, UserRegistered, func(u User) {
		fmt.Printf("welcome %s <%s>\n", u.Name, u.Email)
	})

	libemit.Emit(bus, UserRegistered, User{Name: "John Doe", Email: "johndoe@example.org"})

	// Output:
	// welcome John Doe <johndoe@example.org>
}

func ExampleSubscriptions() {
	bus := libemit.NewBus()
	var subs libemit.Subscriptions

	_, unsubscribe := libemit.OnFunc(bus, UserRegistered, func(u User) {
		fmt.Println("registered", u.Name)
	})
	subs.Add(unsubscribe)

	libemit.Emit(bus, UserRegistered, User{Name: "Ana"})
	subs.Close()
	libemit.Emit(bus, UserRegistered, User{Name: "Bob"})

	// Output:
	// registered Ana
}
