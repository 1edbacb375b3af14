// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package promise

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
	"code.hybscloud.com/lfq"
)

// linkCapacity is the bounded capacity for link transport queues.
// Requests are synchronous, so at most one is in flight per direction;
// the slack lets the server reply without waiting on the guest.
const linkCapacity = 4

// linkContext holds the lock-free transport for one side of a link.
// Each direction is a single-producer single-consumer bounded queue.
type linkContext struct {
	sendQ    *lfq.SPSC[any]
	recvQ    *lfq.SPSC[any]
	closed   *atomix.Uint32
	sendSlot any
}

// Link is the guest side of a host link. It implements Host by sending
// each request to the LinkServer and waiting for the reply, so a call
// body can run on a different goroutine from the host scheduler.
type Link struct {
	ctx    linkContext
	serial Serial
}

// LinkServer is the host side of a link.
// It applies requests received from the Link to a backing Host.
type LinkServer struct {
	ctx    linkContext
	serial Serial
}

// linkPair holds both sides, queues, and the close counter
// in a single allocation.
type linkPair struct {
	guest  Link
	server LinkServer
	closed atomix.Uint32
	req    lfq.SPSC[any]
	resp   lfq.SPSC[any]
}

// NewLink creates a connected guest/host pair.
// Transport uses two bounded lock-free SPSC queues (requests, replies)
// and a shared atomic counter for close signaling.
func NewLink() (*Link, *LinkServer) {
	s := nextSerial()

	pair := &linkPair{}
	pair.req.Init(linkCapacity)
	pair.resp.Init(linkCapacity)

	pair.guest = Link{
		ctx: linkContext{
			sendQ:  &pair.req,
			recvQ:  &pair.resp,
			closed: &pair.closed,
		},
		serial: s,
	}
	pair.server = LinkServer{
		ctx: linkContext{
			sendQ:  &pair.resp,
			recvQ:  &pair.req,
			closed: &pair.closed,
		},
		serial: s,
	}
	return &pair.guest, &pair.server
}

// Serial returns the serial number assigned to the link.
func (l *Link) Serial() Serial {
	return l.serial
}

// Close tells the server no more requests follow.
func (l *Link) Close() {
	l.ctx.closed.Add(1)
}

// call sends req and waits for its reply, backing off on
// iox.ErrWouldBlock with iox.Backoff. An abort raised by the
// server's host is raised again here.
func (l *Link) call(req hostRequest) kont.Resumed {
	var bo iox.Backoff
	l.ctx.sendSlot = req
	for l.ctx.sendQ.Enqueue(&l.ctx.sendSlot) != nil {
		bo.Wait()
	}
	bo.Reset()
	for {
		v, err := l.ctx.recvQ.Dequeue()
		if err == nil {
			if ae, ok := v.(*AbortError); ok {
				panic(ae)
			}
			return v
		}
		bo.Wait()
	}
}

// OpenBatch implements Host.
func (l *Link) OpenBatch(account AccountID) Index {
	return l.call(OpenBatch{Account: account}).(Index)
}

// Chain implements Host.
func (l *Link) Chain(after Index, account AccountID) Index {
	return l.call(Chain{After: after, Account: account}).(Index)
}

// Join implements Host.
func (l *Link) Join(indices []Index) Index {
	return l.call(Join{Indices: indices}).(Index)
}

// Append implements Host.
func (l *Link) Append(index Index, action Action) {
	l.call(Append{Index: index, Action: action})
}

// Redirect implements Host.
func (l *Link) Redirect(index Index) {
	l.call(Redirect{Index: index})
}

// ReturnValue implements Host.
func (l *Link) ReturnValue(payload []byte) {
	l.call(ReturnValue{Payload: payload})
}

// Abort implements Host.
func (l *Link) Abort(message string) {
	l.call(Panic{Message: message})
}

// Serial returns the serial number assigned to the link.
func (s *LinkServer) Serial() Serial {
	return s.serial
}

// Poll applies at most one pending request to h and replies to it.
// Non-blocking: returns iox.ErrWouldBlock when no request is pending.
func (s *LinkServer) Poll(h Host) error {
	v, err := s.ctx.recvQ.Dequeue()
	if err != nil {
		return err
	}
	s.ctx.sendSlot = s.apply(h, v.(hostRequest))
	var bo iox.Backoff
	for s.ctx.sendQ.Enqueue(&s.ctx.sendSlot) != nil {
		bo.Wait()
	}
	return nil
}

// apply runs req on h, turning an abort into the reply.
func (s *LinkServer) apply(h Host, req hostRequest) (v kont.Resumed) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*AbortError)
			if !ok {
				panic(r)
			}
			v = ae
		}
	}()
	return req.apply(h)
}

// Serve applies requests to h until the guest closes the link.
// Waits with adaptive backoff (iox.Backoff) while the guest is idle,
// without spawning goroutines or creating channels.
func (s *LinkServer) Serve(h Host) {
	var bo iox.Backoff
	for {
		if err := s.Poll(h); err == nil {
			bo.Reset()
			continue
		}
		if s.ctx.closed.Load() != 0 {
			return
		}
		bo.Wait()
	}
}
