// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the novel hub command-line client.
//
// Every invocation runs one command against the server through
// [adapter.NovelAPI]. Authentication state is an explicit [Session] built
// from a previously issued token; nothing is stored between runs.
package client
