package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// RootUI owns every widget of the main window and routes the shorten, copy and
// theme interactions through its methods. All UI strings are localized via
// Localization.
