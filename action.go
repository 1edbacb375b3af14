// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

// ActionKind tags an Action.
type ActionKind uint8

const (
	ActionCreateAccount ActionKind = iota
	ActionDeployContract
	ActionFunctionCall
	ActionTransfer
	ActionStake
	ActionAddFullAccessKey
	ActionAddAccessKey
	ActionDeleteKey
	ActionDeleteAccount
)

var actionKindNames = [...]string{
	ActionCreateAccount:    "create_account",
	ActionDeployContract:   "deploy_contract",
	ActionFunctionCall:     "function_call",
	ActionTransfer:         "transfer",
	ActionStake:            "stake",
	ActionAddFullAccessKey: "add_full_access_key",
	ActionAddAccessKey:     "add_access_key",
	ActionDeleteKey:        "delete_key",
	ActionDeleteAccount:    "delete_account",
}

func (k ActionKind) String() string {
	if int(k) < len(actionKindNames) {
		return actionKindNames[k]
	}
	return "unknown"
}

// Action is one scheduled operation appended to a batch.
// The set of actions is closed: only types in this package implement it.
type Action interface {
	Kind() ActionKind
	action()
}

// CreateAccount creates the batch's receiver account.
type CreateAccount struct{}

// DeployContract deploys Code to the receiver account.
type DeployContract struct {
	Code []byte `yaml:"code"`
}

// FunctionCall calls Method on the receiver with Args, attaching Deposit and Gas.
type FunctionCall struct {
	Method  string  `yaml:"method"`
	Args    []byte  `yaml:"args"`
	Deposit Balance `yaml:"deposit"`
	Gas     Gas     `yaml:"gas"`
}

// Transfer sends Deposit to the receiver.
type Transfer struct {
	Deposit Balance `yaml:"deposit"`
}

// Stake stakes the receiver's tokens under PublicKey.
type Stake struct {
	Stake     Balance   `yaml:"stake"`
	PublicKey PublicKey `yaml:"public_key"`
}

// AddFullAccessKey adds a key with full access to the receiver.
type AddFullAccessKey struct {
	PublicKey PublicKey `yaml:"public_key"`
	Nonce     uint64    `yaml:"nonce"`
}

// AddAccessKey adds a key allowed to call only MethodNames on Receiver,
// spending at most Allowance. MethodNames is a comma separated list;
// an empty list permits any method.
type AddAccessKey struct {
	PublicKey   PublicKey `yaml:"public_key"`
	Nonce       uint64    `yaml:"nonce"`
	Allowance   Balance   `yaml:"allowance"`
	Receiver    AccountID `yaml:"receiver"`
	MethodNames string    `yaml:"method_names"`
}

// DeleteKey removes PublicKey from the receiver.
type DeleteKey struct {
	PublicKey PublicKey `yaml:"public_key"`
}

// DeleteAccount deletes the receiver and sends the remaining balance to Beneficiary.
type DeleteAccount struct {
	Beneficiary AccountID `yaml:"beneficiary"`
}

func (CreateAccount) Kind() ActionKind    { return ActionCreateAccount }
func (DeployContract) Kind() ActionKind   { return ActionDeployContract }
func (FunctionCall) Kind() ActionKind     { return ActionFunctionCall }
func (Transfer) Kind() ActionKind         { return ActionTransfer }
func (Stake) Kind() ActionKind            { return ActionStake }
func (AddFullAccessKey) Kind() ActionKind { return ActionAddFullAccessKey }
func (AddAccessKey) Kind() ActionKind     { return ActionAddAccessKey }
func (DeleteKey) Kind() ActionKind        { return ActionDeleteKey }
func (DeleteAccount) Kind() ActionKind    { return ActionDeleteAccount }

func (CreateAccount) action()    {}
func (DeployContract) action()   {}
func (FunctionCall) action()     {}
func (Transfer) action()         {}
func (Stake) action()            {}
func (AddFullAccessKey) action() {}
func (AddAccessKey) action()     {}
func (DeleteKey) action()        {}
func (DeleteAccount) action()    {}
