// SPDX-License-Identifier: MIT

// Package sectormap renders how random the sectors of a disk image look, so
// the used, zeroed and encrypted regions of a drive can be told apart at a glance.
//
// What is sectormap?
//
//	A pipeline of small packages, each usable on its own:
//		• analysis: per-sector classifiers (Shannon, chi-square over 1/3/4/8-bit symbols, KS test)
//		• sector:   mmap-backed image reader and an ordered, parallel scanner
//		• layout:   index-to-pixel mappings (raster scan, sweeping blocks, Hilbert curve)
//		• palette:  result-to-color mappings with legends
//		• render:   canvas, legend and PNG encoding
//		• record:   the per-sector record and its CSV interchange format
//		• output:   image and text sinks selected by name
//
// Data flow:
//
//	image → sector.Scanner → analysis.Classifier → record.Record
//	      → output.Sink (layout + palette + render, or csv/json/template lines)
//
// The command lives in cmd/sectormap:
//
//	sectormap -m hilbert-curve -o disk.png disk.img
//	sectormap -m csv disk.img > disk.csv
//	sectormap from-csv -m sweeping-blocks -o disk.png disk.csv
package sectormap
