// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import "code.hybscloud.com/atomix"

// Serial identifies a guest/host link in logs and tests.
// Both sides of a link share one; NewLink hands out increasing values.
type Serial = uint32

// counter is the last serial handed out by NewLink.
var counter atomix.Uint32

// nextSerial reserves a serial for a new link.
func nextSerial() Serial {
	return counter.Add(1)
}
