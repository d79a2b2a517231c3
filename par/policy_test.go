// Copyright 2025 go-parallel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package par

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPolicyAlgebra(t *testing.T) {
	Convey("execution policies", t, func() {

		Convey("combinators are pure", func() {
			p := Par
			q := p.With(StaticChunkSize(8)).Task()

			So(p.IsTask(), ShouldBeFalse)
			So(p.Chunking().Mode(), ShouldEqual, ChunkAuto)
			So(q.IsTask(), ShouldBeTrue)
			So(q.Chunking().Mode(), ShouldEqual, ChunkStatic)
			So(q.Chunking().Size(), ShouldEqual, 8)
		})

		Convey("equality is nominal", func() {
			So(Par.Same(Par.With(StaticChunkSize(64))), ShouldBeTrue)
			So(Par.Same(Par.Task()), ShouldBeTrue)
			So(Par.Same(Seq), ShouldBeFalse)
			So(Unseq.Same(ParUnseq), ShouldBeFalse)
		})

		Convey("combining unseq with par promotes to par_unseq", func() {
			So(Combine(Unseq, Par).Kind(), ShouldEqual, ParUnseqKind)
			So(Combine(Par, Unseq).Kind(), ShouldEqual, ParUnseqKind)
			So(Combine(Par, Seq).Kind(), ShouldEqual, ParKind)
			So(Combine(Seq, Seq).Kind(), ShouldEqual, SeqKind)
		})

		Convey("every combinator preserves task mode", func() {
			So(Par.Task().With(DynamicChunkSize()).IsTask(), ShouldBeTrue)
			So(Par.Task().On(nil).IsTask(), ShouldBeTrue)
			So(Combine(Par.Task(), Unseq).IsTask(), ShouldBeTrue)
			So(Combine(Unseq, Par.Task()).IsTask(), ShouldBeTrue)
		})

		Convey("variant predicates", func() {
			So(Seq.Parallel(), ShouldBeFalse)
			So(Par.Parallel(), ShouldBeTrue)
			So(Unseq.Vectorized(), ShouldBeTrue)
			So(ParUnseq.Parallel(), ShouldBeTrue)
			So(ParUnseq.Vectorized(), ShouldBeTrue)
			So(Seq.Catches(), ShouldBeTrue)
			So(ParUnseq.Catches(), ShouldBeFalse)
		})

		Convey("blocking facades reject task policies at the boundary", func() {
			err := RequireBlocking(Par.Task(), "op")
			So(err, ShouldNotBeNil)

			var perr *PolicyError
			So(errors.As(err, &perr), ShouldBeTrue)
			So(RequireBlocking(Par, "op"), ShouldBeNil)
		})

		Convey("kind names", func() {
			So(SeqKind.String(), ShouldEqual, "seq")
			So(ParUnseqKind.String(), ShouldEqual, "par_unseq")
		})
	})
}
