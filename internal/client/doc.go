// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// [App] wires the ride API adapter and the local token store together and
// renders server responses as terminal tables. The cobra commands in
// cmd/client are thin wrappers over its methods.
package client
