// Package api implements the stack-walk driver behind the public walk
// package.
//
// One Trace call performs one complete walk, fully synchronously on the
// calling thread:
//
//  1. capture the thread's register context (cpu.Capture);
//  2. acquire the process-wide symbol engine; if bring-up fails the walk
//     yields zero frames;
//  3. pick the walking primitive: StackWalkEx with the extended frame
//     record when the loaded dbghelp exports it, StackWalk64 with the
//     legacy record otherwise. The choice is made once and holds for the
//     whole walk;
//  4. seed the frame record from the context (initRecord) and loop:
//     advance one frame, hand it to the visitor, stop when the primitive
//     reports exhaustion or the visitor declines more frames.
//
// No error ever propagates out of a trace. Every abnormal condition
// (engine unavailable, unresolvable frame, corrupted chain) degrades to
// fewer frames than expected. The only observability into the degradation
// paths is the opt-in debug logger.
package api
