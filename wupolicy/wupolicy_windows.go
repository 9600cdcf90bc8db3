//  Copyright 2024 Google Inc. All Rights Reserved.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

//go:build windows

package wupolicy

import (
	"errors"
	"fmt"

	"github.com/GoogleCloudPlatform/guest-logging-go/logger"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// Reset writes the default AUOptions value to the Automatic Update policy
// key, creating the key if it does not exist. Any existing value is
// overwritten; the write is not attempted again on failure.
func Reset() error {
	if !windows.GetCurrentProcessToken().IsElevated() {
		logger.Warningf("Process is not elevated, writing to HKLM will likely be denied.")
	}

	logger.Debugf("Setting %s\\%s to %d", auPolicyKeyPath, auOptionsName, auOptionsDefault)
	return setDWordValue(registry.LOCAL_MACHINE, auPolicyKeyPath, auOptionsName, auOptionsDefault)
}

// setDWordValue upserts a REG_DWORD value and confirms it round-trips.
func setDWordValue(root registry.Key, path, name string, value uint32) error {
	k, openedExisting, err := registry.CreateKey(root, path, registry.ALL_ACCESS)
	if err != nil {
		return wrapRegError(fmt.Sprintf("opening key %s", path), err)
	}
	defer k.Close()

	if openedExisting {
		prev, _, err := k.GetIntegerValue(name)
		if err == nil {
			logger.Debugf("%s currently set to %d", name, prev)
		} else if err != registry.ErrNotExist {
			logger.Debugf("Could not read current %s value: %v", name, err)
		}
	}

	if err := k.SetDWordValue(name, value); err != nil {
		return wrapRegError(fmt.Sprintf("setting %s to %d", name, value), err)
	}

	got, _, err := k.GetIntegerValue(name)
	if err != nil {
		return wrapRegError(fmt.Sprintf("reading back %s", name), err)
	}
	if got != uint64(value) {
		return fmt.Errorf("read back %s = %d, want %d", name, got, value)
	}
	return nil
}

// wrapRegError tags access-denied failures with remediation text so the
// nonelevated case is distinguishable from a corrupted or locked hive.
func wrapRegError(op string, err error) error {
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return fmt.Errorf("error %s: access denied, run from an elevated process: %w", op, err)
	}
	return fmt.Errorf("error %s: %w", op, err)
}
