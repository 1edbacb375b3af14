// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hosttest

import (
	"io"

	"code.hybscloud.com/promise"
	"gopkg.in/yaml.v3"
)

type planReceipt struct {
	Index    promise.Index     `yaml:"index"`
	Receiver promise.AccountID `yaml:"receiver,omitempty"`
	Joint    bool              `yaml:"joint,omitempty"`
	After    []promise.Index   `yaml:"after,omitempty"`
	Joined   []promise.Index   `yaml:"joined,omitempty"`
	Actions  []planAction      `yaml:"actions,omitempty"`
}

type planAction struct {
	Kind   string         `yaml:"kind"`
	Params promise.Action `yaml:"params,omitempty"`
}

// WritePlan writes the receipts as a YAML sequence in index order.
func (h *Host) WritePlan(w io.Writer) error {
	receipts := h.Receipts()
	plan := make([]planReceipt, 0, len(receipts))
	for _, r := range receipts {
		pr := planReceipt{
			Index:    r.Index,
			Receiver: r.Receiver,
			Joint:    r.Joint,
			After:    r.After,
			Joined:   r.Joined,
		}
		for _, a := range r.Actions {
			pr.Actions = append(pr.Actions, planAction{Kind: a.Kind().String(), Params: a})
		}
		plan = append(plan, pr)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return err
	}
	return enc.Close()
}
