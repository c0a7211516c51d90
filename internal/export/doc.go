// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes conversations to Markdown or JSON files and moves
// image attachments between data URLs and files on disk.
package export
