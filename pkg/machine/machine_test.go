package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateMachine(t *testing.T) {
	type TestState string

	const (
		StatePending   TestState = "Pending"
		StateSubmitted TestState = "Submitted"
		StateCanceled  TestState = "Canceled"
		StateDone      TestState = "Done"
	)

	t.Run("valid transition", func(t *testing.T) {
		machine := New[TestState](StatePending,
			From(StatePending).To(StateSubmitted),
			From(StateSubmitted).To(StateDone, StateCanceled),
		)

		if len(machine.transitions) != 2 {
			t.Errorf("expected %d transitions, got %d", 2, len(machine.transitions))
		}

		err := machine.ToState(StateSubmitted)
		assert.Equal(t, machine.Current(), StatePending)
		assert.Nil(t, err)
	})

	t.Run("invalid transition", func(t *testing.T) {
		machine := New[TestState](StateSubmitted,
			From(StatePending).To(StateSubmitted),
			From(StateSubmitted).To(StateDone, StateCanceled),
		)

		err := machine.ToState(StatePending)
		assert.Equal(t, machine.Current(), StateSubmitted)
		assert.Equal(t, err, ErrInvalidTransition)
	})

	t.Run("transition moves current state", func(t *testing.T) {
		machine := New[TestState](StatePending,
			From(StatePending).To(StateSubmitted),
			From(StateSubmitted).To(StateDone),
		)

		err := machine.Transition(StateSubmitted)
		assert.Nil(t, err)
		assert.Equal(t, StateSubmitted, machine.Current())

		err = machine.Transition(StateDone)
		assert.Nil(t, err)
		assert.Equal(t, StateDone, machine.Current())
	})

	t.Run("illegal transition leaves state unchanged", func(t *testing.T) {
		machine := New[TestState](StatePending,
			From(StatePending).To(StateSubmitted),
		)

		err := machine.Transition(StateDone)
		assert.Equal(t, ErrInvalidTransition, err)
		assert.Equal(t, StatePending, machine.Current())
	})
}
