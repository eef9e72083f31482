// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package notify defines the one-way user feedback contract of the session
// manager and its terminal implementation.
//
// Notifications are fire-and-forget: implementations must not return errors
// or panic, since the session state machine treats them as side effects only.
package notify

import (
	"github.com/pterm/pterm"
)

// Sink surfaces success/error/info messages to the user.
type Sink interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Terminal renders notifications with pterm prefixed printers.
type Terminal struct{}

// NewTerminal creates a terminal sink.
func NewTerminal() *Terminal { return &Terminal{} }

func (*Terminal) Success(msg string) { pterm.Success.Println(msg) }
func (*Terminal) Error(msg string)   { pterm.Error.Println(msg) }
func (*Terminal) Info(msg string)    { pterm.Info.Println(msg) }

// Silent discards all notifications.
type Silent struct{}

func (Silent) Success(string) {}
func (Silent) Error(string)   {}
func (Silent) Info(string)    {}
