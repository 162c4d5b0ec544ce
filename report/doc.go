// SPDX-License-Identifier: MIT

// Package report renders city network queries and listings as text.
//
// The layout is line-oriented and stable so results files can be diffed:
//
//	- DIJKSTRA'S ALGORITHM -
//	Shortest path between 'A' and 'C'.
//	PATH RESULTS:
//		Path: [ A -(5km)-> B -(3km)-> C ]
//		The distance of this path is 8km.
//	ALGORITHM COMPLETE - (0.000012s)
//
// A Renderer writes plain text by default. WithStyle colors city names,
// distances and headings with lipgloss for terminal output; tabs and line
// structure are identical in both modes.
package report
