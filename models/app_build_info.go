// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// UnknownBuildValue stands in for build metadata that was not injected at
// link time.
const UnknownBuildValue = "N/A"

// AppBuildInfo carries the build metadata linked into the server binary.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become
// [UnknownBuildValue].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return UnknownBuildValue
	}
	return v
}

func known(v string) bool {
	return v != "" && v != UnknownBuildValue
}

func (a AppBuildInfo) BuildVersion() string { return orUnknown(a.buildVersion) }

func (a AppBuildInfo) BuildDate() string { return orUnknown(a.buildDate) }

func (a AppBuildInfo) BuildCommit() string { return orUnknown(a.buildCommit) }

// HasVersion reports whether a build version was linked in.
func (a AppBuildInfo) HasVersion() bool { return known(a.buildVersion) }

// HasCommit reports whether a build commit was linked in.
func (a AppBuildInfo) HasCommit() bool { return known(a.buildCommit) }

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version %s, date %s, commit %s", a.BuildVersion(), a.BuildDate(), a.BuildCommit())
}
