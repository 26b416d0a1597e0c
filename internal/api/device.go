package api

import (
	"fmt"

	"github.com/Ruselmi/mine-and-cheet/internal/input"
)

// Device - адаптер ввода, принимающий сообщения клиента
type Device interface {
	input.Adapter
	Apply(msg *Message) error
}

// Имена устройств в параметре ?device=
const (
	DeviceKeyboard = "keyboard"
	DeviceJoystick = "joystick"
	DeviceTouch    = "touch"
)

// NewDevice создаёт устройство по имени; пустое имя - клавиатура
func NewDevice(name string) (Device, error) {
	switch name {
	case "", DeviceKeyboard:
		return &keyboardDevice{input.NewKeyboard()}, nil
	case DeviceJoystick:
		return &joystickDevice{input.NewJoystick()}, nil
	case DeviceTouch:
		return &touchDevice{input.NewTouch()}, nil
	default:
		return nil, fmt.Errorf("неизвестное устройство %q", name)
	}
}

type keyboardDevice struct {
	*input.Keyboard
}

func (d *keyboardDevice) Apply(msg *Message) error {
	switch msg.Type {
	case MsgTypeKey:
		var ev KeyEvent
		if err := msg.Decode(&ev); err != nil {
			return err
		}
		if ev.Down {
			d.KeyDown(ev.Code)
		} else {
			d.KeyUp(ev.Code)
		}
	case MsgTypePointer:
		var ev PointerEvent
		if err := msg.Decode(&ev); err != nil {
			return err
		}
		d.PointerMove(ev.DX, ev.DY)
	case MsgTypeClick:
		return applyClick(msg, d.Click)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMessage, msg.Type)
	}
	return nil
}

type joystickDevice struct {
	*input.Joystick
}

func (d *joystickDevice) Apply(msg *Message) error {
	switch msg.Type {
	case MsgTypeJoystick:
		var ev JoystickEvent
		if err := msg.Decode(&ev); err != nil {
			return err
		}
		d.Move(ev.X, ev.Y)
	case MsgTypeClick:
		return applyClick(msg, d.Click)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMessage, msg.Type)
	}
	return nil
}

type touchDevice struct {
	*input.Touch
}

func (d *touchDevice) Apply(msg *Message) error {
	switch msg.Type {
	case MsgTypeTouch:
		var ev TouchEvent
		if err := msg.Decode(&ev); err != nil {
			return err
		}
		switch ev.Phase {
		case TouchStart:
			d.Start(ev.X, ev.Y)
		case TouchMove:
			d.MoveTo(ev.X, ev.Y)
		case TouchEnd:
			d.End()
		default:
			return fmt.Errorf("неизвестная фаза касания %q", ev.Phase)
		}
	case MsgTypeClick:
		return applyClick(msg, d.Click)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedMessage, msg.Type)
	}
	return nil
}

func applyClick(msg *Message, click func(input.Button)) error {
	var ev ClickEvent
	if err := msg.Decode(&ev); err != nil {
		return err
	}
	click(ev.Button)
	return nil
}
