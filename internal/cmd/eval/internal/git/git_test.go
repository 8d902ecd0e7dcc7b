// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package git

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDiffTree(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    []FileChange
		wantErr bool
	}{
		{
			name: "empty",
			out:  "",
		},
		{
			name: "modified-added-deleted",
			out: ":100644 100644 1111111111111111111111111111111111111111 2222222222222222222222222222222222222222 M\tREADME.md\n" +
				":000000 100644 0000000000000000000000000000000000000000 3333333333333333333333333333333333333333 A\tdir/new file.go\n" +
				":100644 000000 4444444444444444444444444444444444444444 0000000000000000000000000000000000000000 D\told.go\n",
			want: []FileChange{
				{"README.md", "1111111111111111111111111111111111111111", "2222222222222222222222222222222222222222"},
				{"dir/new file.go", nullID, "3333333333333333333333333333333333333333"},
				{"old.go", "4444444444444444444444444444444444444444", nullID},
			},
		},
		{
			name:    "missing-colon",
			out:     "100644 100644 1111 2222 M\tREADME.md\n",
			wantErr: true,
		},
		{
			name:    "missing-fields",
			out:     ":100644 1111 2222 M\tREADME.md\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDiffTree(tt.out)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDiffTree(...) returned error %v, want error: %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseDiffTree(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}
