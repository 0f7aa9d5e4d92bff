// Copyright 2026 The Passgen Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds pool entries and the pepper word while they are
// in flight between the user and the derivation core.
//
// Buffer stores sensitive bytes outside the Go heap in an anonymous
// mmap region that is locked into RAM (mlock), excluded from core
// dumps (MADV_DONTDUMP), and zeroed on Close. The garbage collector
// never sees the region, so it cannot copy or relocate the secret.
//
// Source is the capability interface through which commands request
// secret strings; Terminal implements it with a no-echo terminal
// prompt. Tests substitute a scripted Source so nothing in the
// repository ever depends on an actual interactive terminal.
package secret
