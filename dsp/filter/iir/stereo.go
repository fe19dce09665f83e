package iir

import (
	"sync"

	"github.com/cwbudde/algo-iir/dsp/core"
)

// StereoFilter runs one [Filter] state per channel with shared coefficients.
type StereoFilter[F core.Float] struct {
	left  Filter[F]
	right Filter[F]
}

// NewStereoFilter creates a stereo filter with independent left/right state.
func NewStereoFilter[F core.Float](b, a []F) (*StereoFilter[F], error) {
	s := &StereoFilter[F]{}
	if err := s.Init(b, a); err != nil {
		return nil, err
	}

	return s, nil
}

// Init configures both channels with the same coefficients.
// On error both channels keep their previous configuration.
func (s *StereoFilter[F]) Init(b, a []F) error {
	var left, right Filter[F]
	if err := left.Init(b, a); err != nil {
		return err
	}
	if err := right.Init(b, a); err != nil {
		return err
	}

	s.left = left
	s.right = right

	return nil
}

// Left returns the left-channel filter.
func (s *StereoFilter[F]) Left() *Filter[F] { return &s.left }

// Right returns the right-channel filter.
func (s *StereoFilter[F]) Right() *Filter[F] { return &s.right }

// Reset clears both channel states.
func (s *StereoFilter[F]) Reset() {
	s.left.Reset()
	s.right.Reset()
}

// Filtered returns the most recent output of each channel.
func (s *StereoFilter[F]) Filtered() (left, right F) {
	return s.left.Filtered(), s.right.Filtered()
}

// ProcessSample processes one stereo sample frame.
func (s *StereoFilter[F]) ProcessSample(leftIn, rightIn F) (leftOut, rightOut F) {
	return s.left.ProcessSample(leftIn), s.right.ProcessSample(rightIn)
}

// Process filters count samples of planar stereo input. All four slices must
// hold at least count samples. Nothing is written when an error is returned.
func (s *StereoFilter[F]) Process(inL, inR, outL, outR []F, count int) error {
	if err := s.checkProcess(inL, inR, outL, outR, count); err != nil {
		return err
	}

	for i := range count {
		outL[i], outR[i] = s.ProcessSample(inL[i], inR[i])
	}

	return nil
}

// ProcessParallel is [StereoFilter.Process] with each channel on its own
// goroutine. The result is identical to Process.
func (s *StereoFilter[F]) ProcessParallel(inL, inR, outL, outR []F, count int) error {
	if err := s.checkProcess(inL, inR, outL, outR, count); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Go(func() { s.left.process(inL[:count], outL[:count]) })
	wg.Go(func() { s.right.process(inR[:count], outR[:count]) })
	wg.Wait()

	return nil
}

// ProcessFrames processes interleaved [left,right] frames in place.
func (s *StereoFilter[F]) ProcessFrames(frames [][2]F) error {
	if !s.left.Initialized() {
		return ErrUninitialized
	}

	for i := range frames {
		frames[i][0], frames[i][1] = s.ProcessSample(frames[i][0], frames[i][1])
	}

	return nil
}

func (s *StereoFilter[F]) checkProcess(inL, inR, outL, outR []F, count int) error {
	if !s.left.Initialized() {
		return ErrUninitialized
	}

	return checkBlock(count, len(inL), len(inR), len(outL), len(outR))
}

// StereoCoupledAllPass runs one [CoupledAllPass] per channel with shared
// delay vectors.
type StereoCoupledAllPass[F core.Float] struct {
	left  CoupledAllPass[F]
	right CoupledAllPass[F]
}

// NewStereoCoupledAllPass creates a stereo coupled all-pass pair.
func NewStereoCoupledAllPass[F core.Float](d1, d2 []F) (*StereoCoupledAllPass[F], error) {
	s := &StereoCoupledAllPass[F]{}
	if err := s.Init(d1, d2); err != nil {
		return nil, err
	}

	return s, nil
}

// Init configures both channels with the same delay vectors.
// On error both channels keep their previous configuration.
func (s *StereoCoupledAllPass[F]) Init(d1, d2 []F) error {
	var left, right CoupledAllPass[F]
	if err := left.Init(d1, d2); err != nil {
		return err
	}
	if err := right.Init(d1, d2); err != nil {
		return err
	}

	s.left = left
	s.right = right

	return nil
}

// Left returns the left-channel pair.
func (s *StereoCoupledAllPass[F]) Left() *CoupledAllPass[F] { return &s.left }

// Right returns the right-channel pair.
func (s *StereoCoupledAllPass[F]) Right() *CoupledAllPass[F] { return &s.right }

// Reset clears both channel states.
func (s *StereoCoupledAllPass[F]) Reset() {
	s.left.Reset()
	s.right.Reset()
}

// ProcessSample processes one stereo sample frame.
func (s *StereoCoupledAllPass[F]) ProcessSample(leftIn, rightIn F) (left, right Pair[F]) {
	left.Pos, left.Neg = s.left.ProcessSample(leftIn)
	right.Pos, right.Neg = s.right.ProcessSample(rightIn)

	return left, right
}

// Process runs count samples of planar stereo input into per-channel pairs.
// Nothing is written when an error is returned.
func (s *StereoCoupledAllPass[F]) Process(inL, inR []F, outL, outR []Pair[F], count int) error {
	if !s.left.Initialized() {
		return ErrUninitialized
	}
	if err := checkBlock(count, len(inL), len(inR), len(outL), len(outR)); err != nil {
		return err
	}

	for i := range count {
		outL[i], outR[i] = s.ProcessSample(inL[i], inR[i])
	}

	return nil
}

// ProcessParallel is [StereoCoupledAllPass.Process] with each channel on its
// own goroutine.
func (s *StereoCoupledAllPass[F]) ProcessParallel(inL, inR []F, outL, outR []Pair[F], count int) error {
	if !s.left.Initialized() {
		return ErrUninitialized
	}
	if err := checkBlock(count, len(inL), len(inR), len(outL), len(outR)); err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Go(func() { s.left.processPairs(inL[:count], outL[:count]) })
	wg.Go(func() { s.right.processPairs(inR[:count], outR[:count]) })
	wg.Wait()

	return nil
}
