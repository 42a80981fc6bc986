// SPDX-License-Identifier: MIT

// Package sector splits a disk image into fixed-size sectors and feeds them
// through a classifier.
//
// What:
//
//   - Image: a read-only, memory-mapped view of the image file.
//   - Reader: sequential sector access; the short tail of an image whose size
//     is not a multiple of the sector size is reported as ErrNotMultiple and
//     never handed out as a sector.
//   - Scanner: classifies all whole sectors with a bounded pool of goroutines
//     and delivers records strictly in index order.
//
// Usage:
//
//	img, err := sector.Open(path)
//	if err != nil { ... }
//	defer img.Close()
//	sc, err := sector.NewScanner(img, img.Size(), classifier, sector.DefaultScanOptions())
//	err = sc.Scan(ctx, func(r record.Record) error { return sink.Write(r) })
//	if errors.Is(err, sector.ErrNotMultiple) { ... }
//
// Errors:
//
//   - ErrNotMultiple: image size is not a multiple of the sector size;
//     returned after every whole sector has been delivered.
//   - ErrInvalidSectorSize: sector size below 1.
//   - ErrInvalidWorkers: negative worker or batch count.
package sector
