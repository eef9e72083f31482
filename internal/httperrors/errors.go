// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly error handling for HTTP requests.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// FormatNetworkError converts technical HTTP/network errors into user-friendly messages.
// It detects common error types (timeout, DNS, connection refused) and displays
// helpful troubleshooting information.
func FormatNetworkError(err error, context string) error {
	if err == nil {
		return nil
	}

	displayErrorMessage(err, context)

	// Return wrapped error for logging/debugging
	return fmt.Errorf("network error: %w", err)
}

// displayErrorMessage shows a formatted error message to the user based on error type.
func displayErrorMessage(err error, context string) {
	if isTimeoutError(err) {
		pterm.Printf("⏱️  Connection timeout while %s\n", context)
		pterm.Println()
		pterm.Println("The server took too long to respond. Please try again in a few moments.")
		pterm.Println()
		return
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
		pterm.Println()
		pterm.Println("Please check your internet connection and DNS settings.")
		pterm.Println()
		return
	}

	if isConnectionRefusedError(err) {
		pterm.Printf("🚫 Connection refused while %s\n", context)
		pterm.Println()
		pterm.Println("The server is not accepting connections. Please try again later.")
		pterm.Println()
		return
	}

	pterm.Printf("❌ Cannot reach the CareerPrep service while %s\n", context)
	pterm.Println()
	pterm.Println("Please check:")
	pterm.Println("  • Your internet connection")
	pterm.Println("  • Firewall settings that might block HTTPS requests")
	pterm.Println()
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	if strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded") {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}

	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}
