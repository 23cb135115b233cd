package model

// Package model defines the values passed between the UI shell and the
// shortening gateway: the per-click request, its tagged result, and the
// shell state. None of them outlive a single click.
