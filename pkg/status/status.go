// Copyright 2025 the sitesync authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"os"
)

// 📊 FileStatus represents the outcome of a single copy step
type FileStatus int

const (
	StatusUnknown  FileStatus = iota
	StatusCreated             // Destination path did not exist before the copy
	StatusReplaced            // Destination path existed and was overwritten
	StatusSkipped             // Source item absent or ignored; nothing written
	StatusError               // Copy failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusReplaced:
		return "replaced"
	case StatusSkipped:
		return "skipped"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// 📄 FileChange describes one action taken (or skipped) during a run
type FileChange struct {
	Path        string      // Destination path of the item
	Status      FileStatus  // Outcome of the step
	Size        int64       // Bytes written, zero when skipped
	Mode        os.FileMode // Mode applied to the destination
	Description string      // Optional human-readable note
	Err         error       // Any error associated with this item
}
