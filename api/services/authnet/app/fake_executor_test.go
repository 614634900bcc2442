package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	gw "github.com/tbeaudouin05/authnet-billing/api/services/authnet/gateway"
)

// fakeExecutor replays canned JSON bodies per request name and records every request.
// The last queued body for a name is reused once the queue is drained.
type fakeExecutor struct {
	mu        sync.Mutex
	responses map[string][]string
	requests  []recordedRequest
	err       error
}

type recordedRequest struct {
	name string
	body map[string]any
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{responses: map[string][]string{}}
}

func (f *fakeExecutor) respond(name string, bodies ...string) *fakeExecutor {
	f.responses[name] = append(f.responses[name], bodies...)
	return f
}

func (f *fakeExecutor) Execute(ctx context.Context, req gw.Request, resp gw.Response) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, err := json.Marshal(req)
	if err != nil {
		return err
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return err
	}
	name := req.RequestName()
	f.requests = append(f.requests, recordedRequest{name: name, body: body})
	if f.err != nil {
		return f.err
	}

	queue := f.responses[name]
	if len(queue) == 0 {
		return gw.ErrEmptyResponse
	}
	next := queue[0]
	if len(queue) > 1 {
		f.responses[name] = queue[1:]
	}
	return json.Unmarshal([]byte(next), resp)
}

func (f *fakeExecutor) requestsNamed(name string) []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []recordedRequest
	for _, r := range f.requests {
		if r.name == name {
			out = append(out, r)
		}
	}
	return out
}

const okMessages = `"messages":{"resultCode":"Ok","message":[{"code":"I00001","text":"Successful."}]}`

func errMessages(code, text string) string {
	return fmt.Sprintf(`"messages":{"resultCode":"Error","message":[{"code":%q,"text":%q}]}`, code, text)
}

const (
	testLoginID      = "test-login"
	testKey          = "test-transaction-key"
	testSignatureKey = "test-signature-key"
)

func newTestService(exec gw.Executor, d Dependencies) *serviceImpl {
	d.Executor = exec
	d.Credentials = gw.StaticCredentials(gw.MerchantCredential{LoginID: testLoginID, TransactionKey: testKey})
	if d.SignatureKey == "" {
		d.SignatureKey = testSignatureKey
	}
	return NewService(d).(*serviceImpl)
}

// path walks nested JSON objects of a recorded request body.
func path(body map[string]any, keys ...string) any {
	var cur any = body
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[k]
	}
	return cur
}
