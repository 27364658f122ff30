// Package walk captures the call stack of the current thread on Windows
// by driving the DbgHelp symbol engine.
//
// The walker reconstructs the sequence of active call frames (program
// counter, stack pointer, frame pointer) and hands each one to a
// caller-supplied visitor until the stack is exhausted or the visitor
// stops the walk. It produces raw addresses only; turning an address into
// a function name, file or line is symbolication and belongs to other
// tools.
//
// # Quick Start
//
//	walk.Trace(func(f walk.Frame) bool {
//		fmt.Printf("pc=%#x sp=%#x fp=%#x\n", f.PC, f.SP, f.FP)
//		return true // keep walking
//	})
//
// # How It Works
//
// A trace captures the thread's full register context, brings up the
// process-wide DbgHelp engine, then repeatedly asks the best available
// walking primitive for the next frame:
//
//   - StackWalkEx where the loaded dbghelp exports it (handles debug info
//     internally and understands inline frames);
//   - StackWalk64 otherwise, since it exists on more systems.
//
// On 64-bit targets the function-table and module-base lookups go through
// the kernel's RtlLookupFunctionEntry rather than DbgHelp's own
// resolvers, which lets the walk pass through JIT-generated code that was
// never registered with the symbol engine.
//
// # Failure Model
//
// Stack capture is a best-effort diagnostic operation and never fails
// loudly. If the symbol engine cannot be initialized the trace is empty;
// if a frame cannot be resolved mid-walk the trace is truncated. Callers
// observe only "fewer frames than expected", never an error. Attach a
// logger with [SetLogger] to see why a trace came up short.
//
// # Concurrency
//
// A trace runs synchronously on the calling thread and walks only that
// thread's stack. The DbgHelp engine is a process-wide single-threaded
// resource; concurrent traces from multiple goroutines serialize on an
// internal lock held for the duration of each walk. Frame values contain
// only addresses and may be stored, copied and read from any goroutine
// after the walk returns.
//
// # Platform Support
//
// Windows on 386, amd64, arm and arm64. On every other platform Trace
// compiles and yields zero frames, the same degradation as a failed
// engine bring-up.
package walk
