// Package demo holds the color button demo itself: the selector state,
// the notification messages and the panel builders. Builders only talk
// to the UI frame handle, so any backend (Gio, headless) can drive them.
package demo
