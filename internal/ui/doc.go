// Package ui implements the interactive viewer surface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for watching channels:
//  1. [ChannelListView] : Browse, filter and select channels
//  2. [PlayerView] : Show the resolved embed URL for the selection and share it
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Free-text filtering uses the viewer search semantics: the filter value of a
// channel is its name, description and category combined.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, c, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
