// Package keypad implements the 16-key hexadecimal input latch of the
// CHIP-8 machine, including the wait-for-key run state.
package keypad

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

const (
	KEY_COUNT = 16 // Number of keys on the pad, 0x0 through 0xF.
)

var (
	ErrInvalidKey = errors.New(f("invalid key index"))
)

// ErrKey reports a key index outside of the pad.
type ErrKey int

func (ek ErrKey) Error() string {
	return f("key %d not in 0..%d", int(ek), KEY_COUNT-1)
}

func (ek ErrKey) Is(err error) bool {
	return err == ErrInvalidKey
}

// State is the run state of the machine as seen from the keypad.
// It is either Ready or AwaitingKey.
type State interface {
	state()
}

// Ready means instructions may be fetched and executed.
type Ready struct{}

// AwaitingKey means execution is blocked until a key is pressed.
// The index of the pressed key will be written to Register.
type AwaitingKey struct {
	Register byte
}

func (Ready) state()       {}
func (AwaitingKey) state() {}

// Keypad is the input latch.
type Keypad struct {
	Key   [KEY_COUNT]bool // Current pressed state of each key.
	State State           // Ready or AwaitingKey.
}

// NewKeypad creates a keypad with all keys released, in the Ready state.
func NewKeypad() (kp *Keypad) {
	kp = &Keypad{
		State: Ready{},
	}
	return
}

// Check verifies that a key index is on the pad.
func Check(key int) (err error) {
	if key < 0 || key >= KEY_COUNT {
		err = ErrKey(key)
	}
	return
}

// Pressed returns the state of a key.
func (kp *Keypad) Pressed(key int) (pressed bool, err error) {
	err = Check(key)
	if err != nil {
		return
	}

	pressed = kp.Key[key]
	return
}

// Waiting returns true if the latch is blocking execution.
func (kp *Keypad) Waiting() (waiting bool) {
	_, waiting = kp.State.(AwaitingKey)
	return
}

// Await transitions the latch to AwaitingKey for the register.
func (kp *Keypad) Await(register byte) {
	kp.State = AwaitingKey{Register: register}
}

// Set records a key press or release.
//
// If the press resolves a pending wait, the destination register is returned
// with resolved set, and the latch returns to Ready. Releases never resolve a
// wait.
func (kp *Keypad) Set(key int, pressed bool) (register byte, resolved bool, err error) {
	err = Check(key)
	if err != nil {
		return
	}

	kp.Key[key] = pressed

	if !pressed {
		return
	}

	wait, ok := kp.State.(AwaitingKey)
	if !ok {
		return
	}

	kp.State = Ready{}
	register = wait.Register
	resolved = true

	return
}

// Reset releases all keys and returns to the Ready state.
func (kp *Keypad) Reset() {
	clear(kp.Key[:])
	kp.State = Ready{}
}
