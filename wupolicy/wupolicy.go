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

// Package wupolicy reverts the Windows Update Automatic Updates policy
// value that patch management agents set.
package wupolicy

const (
	// auPolicyKeyPath is the machine policy key holding Automatic Update
	// settings. Values under this key override the user-visible Windows
	// Update configuration.
	auPolicyKeyPath = `SOFTWARE\Policies\Microsoft\Windows\WindowsUpdate\AU`

	// auOptionsName controls the automatic update behavior mode.
	auOptionsName = "AUOptions"

	// auOptionsDefault is the value Windows treats as "policy not configured".
	auOptionsDefault = 0
)
