/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import "testing"

func TestGet_Ldflags(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "v2.0.0"
	if got := Get(); got != "v2.0.0" {
		t.Errorf("Get() = %q, want v2.0.0", got)
	}
	if got := UserAgent(); got != "tokencss/v2.0.0" {
		t.Errorf("UserAgent() = %q", got)
	}
	if Info()["name"] != Name {
		t.Errorf("Info() name = %q", Info()["name"])
	}
}
