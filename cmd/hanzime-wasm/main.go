//go:build wasip1

// Command hanzime-wasm exports the hanzime engine to a WebAssembly host.
//
// Build as a reactor module:
//
//	GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o hanzime.wasm ./cmd/hanzime-wasm
//
// The host writes a UTF-8 query into the buffer at wasm_query_buf_ptr,
// calls translate_zh_hans with the query length and reads the reply of
// wasm_reply_buf_pos bytes from wasm_reply_buf_ptr.
package main

import (
	"unsafe"

	"github.com/npillmayer/hanzime"
	"github.com/npillmayer/hanzime/hsk"
	"github.com/npillmayer/hanzime/internal/ipcmem"
)

var engine = hanzime.NewEngine(hsk.Dictionary())

//go:wasmimport js js_log_trace
func jsLogTrace(code int32)

func init() {
	ipcmem.TraceHook = func(code int32) { jsLogTrace(code) }
}

//go:wasmexport wasm_query_buf_ptr
func wasmQueryBufPtr() uint32 {
	return uint32(uintptr(unsafe.Pointer(&ipcmem.In[0])))
}

//go:wasmexport wasm_reply_buf_ptr
func wasmReplyBufPtr() uint32 {
	return uint32(uintptr(unsafe.Pointer(&ipcmem.Out[0])))
}

//go:wasmexport wasm_buffer_size
func wasmBufferSize() int32 {
	return ipcmem.BufSize
}

//go:wasmexport wasm_reply_buf_pos
func wasmReplyBufPos() int32 {
	return int32(ipcmem.Position())
}

//go:wasmexport translate_zh_hans
func translateZhHans(n int32) int32 {
	return int32(ipcmem.Translate(engine, int(n)))
}

func main() {}
