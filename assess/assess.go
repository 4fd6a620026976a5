// Package assess orchestrates one quality assessment: it evaluates the
// rule catalog over a harvested dataset graph, adds the reference-data
// alignment checks the catalog cannot express, and wraps the resulting
// measurements in DQV assessment scaffolding.
package assess

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opencatalog/propcheck/catalog"
	"github.com/opencatalog/propcheck/engine"
	"github.com/opencatalog/propcheck/measure"
	"github.com/opencatalog/propcheck/rdf"
	"github.com/opencatalog/propcheck/refdata"
	"github.com/opencatalog/propcheck/vocabulary/dcat"
	"github.com/opencatalog/propcheck/vocabulary/dcterms"
	"github.com/opencatalog/propcheck/vocabulary/dqv"
	"github.com/opencatalog/propcheck/vocabulary/mqa"
	"github.com/opencatalog/propcheck/vocabulary/oa"
	"github.com/opencatalog/propcheck/vocabulary/prov"
)

// nodeNamespace is the fixed UUID namespace for assessment and annotation
// blank nodes, keeping their identifiers stable across re-runs of the same
// dataset.
var nodeNamespace = uuid.MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")

// Assessor runs quality assessments against a fixed catalog and reference
// data source. Safe for concurrent use: each Assess call works on its own
// graph and result set.
type Assessor struct {
	cat     *catalog.Catalog
	eng     *engine.Engine
	sets    refdata.Sets
	logger  *slog.Logger
	observe func(engine.Result)
}

// New creates an assessor over the given catalog. sets answers the
// vocabulary-alignment lookups; logger may be nil for the default.
func New(cat *catalog.Catalog, sets refdata.Sets, logger *slog.Logger) *Assessor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assessor{
		cat:    cat,
		eng:    engine.New(cat, dcat.ClassDataset),
		sets:   sets,
		logger: logger,
	}
}

// SetResultObserver registers a callback invoked once per rule result on
// every Assess call, for instrumentation. Set it before the assessor is
// shared across goroutines.
func (a *Assessor) SetResultObserver(fn func(engine.Result)) {
	a.observe = fn
}

// Assess evaluates every catalog rule plus the reference-data alignment
// checks against the harvested triples and returns the assessment graph:
// quality measurements, per-distribution five-star annotations and the
// DatasetAssessment/DistributionAssessment scaffolding that binds them to
// the dataset. Input triples are not echoed back.
//
// The output is deterministic for a fixed (datasetIRI, triples, now) and
// identical reference data: re-running an assessment yields a
// byte-identical replacement graph.
func (a *Assessor) Assess(datasetIRI string, triples []rdf.Triple, now time.Time) ([]rdf.Triple, error) {
	g := rdf.NewGraph(triples)
	dataset := rdf.NewIRI(datasetIRI)

	results, err := a.eng.Evaluate(g, dataset)
	if err != nil {
		return nil, fmt.Errorf("evaluate catalog: %w", err)
	}
	if a.observe != nil {
		for _, r := range results {
			a.observe(r)
		}
	}

	obs := measure.FromResults(results, a.cat)
	distributions := a.distributions(g, dataset)

	obs = append(obs, a.datasetAlignment(g, dataset)...)
	ratings := make(map[rdf.Term]starRating, len(distributions))
	for _, dist := range distributions {
		distObs, rating := a.distributionAlignment(g, dist)
		obs = append(obs, distObs...)
		ratings[dist] = rating
	}

	built, err := measure.Build(obs, now)
	if err != nil {
		return nil, fmt.Errorf("build measurements: %w", err)
	}

	out := rdf.NewGraph(built.Triples)
	a.scaffold(out, g, dataset, distributions, obs, built, ratings)

	a.logger.Debug("assessment complete",
		"dataset", datasetIRI,
		"distributions", len(distributions),
		"measurements", len(built.Subjects),
		"triples", out.Len())
	return out.Triples(), nil
}

// distributions enumerates the distribution nodes the same way the rule
// engine does, so alignment measurements land on the same targets as the
// catalog measurements.
func (a *Assessor) distributions(g *rdf.Graph, dataset rdf.Term) []rdf.Term {
	var dists []rdf.Term
	for _, s := range g.SubjectsOfType(dcat.ClassDistribution) {
		if s == dataset {
			continue
		}
		dists = append(dists, s)
	}
	return dists
}

// datasetAlignment emits the dataset-level checks that need reference
// data: access-rights vocabulary alignment.
func (a *Assessor) datasetAlignment(g *rdf.Graph, dataset rdf.Term) []measure.Observation {
	aligned := false
	for _, right := range g.ObjectsOf(dataset, dcterms.AccessRights) {
		if right.IsResource() && a.sets.ValidAccessRight(right.Value) {
			aligned = true
			break
		}
	}
	return []measure.Observation{{
		Target:    dataset,
		Metric:    mqa.AccessRightsVocabularyAlignment,
		Satisfied: aligned,
	}}
}

// distributionAlignment emits the per-distribution reference-data checks
// and computes the distribution's five-star rating from them.
func (a *Assessor) distributionAlignment(g *rdf.Graph, dist rdf.Term) ([]measure.Observation, starRating) {
	formats := g.ObjectsOf(dist, dcterms.Format)
	mediaTypes := g.ObjectsOf(dist, dcat.MediaType)
	licenses := g.ObjectsOf(dist, dcterms.License)

	formatAligned := false
	for _, f := range formats {
		if a.sets.ValidFileType(f.Value) {
			formatAligned = true
			break
		}
	}
	for _, mt := range mediaTypes {
		if formatAligned {
			break
		}
		if a.sets.ValidMediaType(mt.Value) {
			formatAligned = true
		}
	}

	openLicense := false
	for _, l := range licenses {
		if a.sets.ValidOpenLicense(l.Value) {
			openLicense = true
			break
		}
	}

	obs := []measure.Observation{
		{Target: dist, Metric: mqa.FormatMediaTypeVocabularyAlignment, Satisfied: formatAligned},
	}
	// License checks only apply when the distribution states a license;
	// licenseAvailability already covers absence.
	if len(licenses) > 0 {
		obs = append(obs,
			measure.Observation{Target: dist, Metric: mqa.KnownLicense, Satisfied: openLicense},
			measure.Observation{Target: dist, Metric: mqa.OpenLicense, Satisfied: openLicense},
		)
	}

	rating := starRating{openLicense: openLicense}
	if formatAligned {
		rating.machineInterpretable = anyFormatIn(formats, machineInterpretableFormats)
		rating.nonProprietary = anyFormatIn(formats, nonProprietaryFormats)
		rating.linkedData = anyFormatIn(formats, linkedDataFormats)
		obs = append(obs,
			measure.Observation{Target: dist, Metric: mqa.FormatMediaTypeMachineInterpretable, Satisfied: rating.machineInterpretable},
			measure.Observation{Target: dist, Metric: mqa.FormatMediaTypeNonProprietary, Satisfied: rating.nonProprietary},
		)
	}

	obs = append(obs, measure.Observation{
		Target:    dist,
		Metric:    mqa.AtLeastFourStars,
		Satisfied: rating.stars() >= 4,
	})
	return obs, rating
}

// scaffold adds the assessment structure around the built measurements:
// the dataset and distribution assessment nodes, the ownership links from
// assessments to measurements, and the per-distribution five-star
// annotations.
func (a *Assessor) scaffold(out, in *rdf.Graph, dataset rdf.Term, distributions []rdf.Term, obs []measure.Observation, built measure.Built, ratings map[rdf.Term]starRating) {
	out.Insert(rdf.NewTriple(dataset, rdf.TypeIRI, rdf.NewIRI(dcat.ClassDataset)))

	datasetAssessment := assessmentNode(in, dataset)
	out.Insert(rdf.NewTriple(datasetAssessment, rdf.TypeIRI, rdf.NewIRI(mqa.ClassDatasetAssessment)))
	out.Insert(rdf.NewTriple(datasetAssessment, mqa.AssessmentOf, dataset))
	out.Insert(rdf.NewTriple(dataset, mqa.HasAssessment, datasetAssessment))

	owners := make(map[rdf.Term]rdf.Term, len(distributions)+1)
	owners[dataset] = datasetAssessment

	for _, dist := range distributions {
		distAssessment := assessmentNode(in, dist)
		owners[dist] = distAssessment
		out.Insert(rdf.NewTriple(dist, rdf.TypeIRI, rdf.NewIRI(dcat.ClassDistribution)))
		out.Insert(rdf.NewTriple(distAssessment, rdf.TypeIRI, rdf.NewIRI(mqa.ClassDistributionAssessment)))
		out.Insert(rdf.NewTriple(distAssessment, mqa.AssessmentOf, dist))
		out.Insert(rdf.NewTriple(dist, mqa.HasAssessment, distAssessment))
		out.Insert(rdf.NewTriple(datasetAssessment, mqa.HasDistributionAssessment, distAssessment))
	}

	// Observation order keeps the ownership triples deterministic; the
	// Subjects map alone would not.
	for _, o := range obs {
		subject := built.Subjects[measure.Key{Target: o.Target, Metric: o.Metric}]
		owner, ok := owners[o.Target]
		if !ok {
			owner = datasetAssessment
		}
		out.Insert(rdf.NewTriple(owner, mqa.ContainsQualityMeasurement, subject))
	}

	for _, dist := range distributions {
		a.annotate(out, datasetAssessment, dist, ratings[dist], built)
	}
}

// annotate emits the five-star quality annotation for one distribution,
// deriving it from the license and format measurements it was computed
// from.
func (a *Assessor) annotate(out *rdf.Graph, datasetAssessment, dist rdf.Term, rating starRating, built measure.Built) {
	ann := annotationNode(dist)
	out.Insert(rdf.NewTriple(ann, rdf.TypeIRI, rdf.NewIRI(dqv.ClassQualityAnnotation)))
	out.Insert(rdf.NewTriple(ann, oa.HasBody, rdf.NewIRI(rating.stars().iri())))
	out.Insert(rdf.NewTriple(ann, oa.MotivatedBy, rdf.NewIRI(oa.Classifying)))

	for _, metric := range []string{mqa.OpenLicense, mqa.FormatMediaTypeMachineInterpretable, mqa.FormatMediaTypeNonProprietary} {
		if subject, ok := built.Subjects[measure.Key{Target: dist, Metric: metric}]; ok {
			out.Insert(rdf.NewTriple(ann, prov.WasDerivedFrom, subject))
		}
	}

	out.Insert(rdf.NewTriple(datasetAssessment, mqa.ContainsQualityAnnotation, ann))
}

// assessmentNode resolves the assessment node for a resource: an existing
// mqa:hasAssessment link in the harvested graph wins, otherwise a blank
// node derived deterministically from the resource identifier.
func assessmentNode(in *rdf.Graph, resource rdf.Term) rdf.Term {
	for _, o := range in.ObjectsOf(resource, mqa.HasAssessment) {
		if o.IsResource() {
			return o
		}
	}
	id := uuid.NewSHA1(nodeNamespace, []byte("assessment:"+resource.Kind.String()+":"+resource.Value))
	return rdf.NewBlank("assessment-" + id.String())
}

// annotationNode is the deterministic blank node for a distribution's
// five-star annotation.
func annotationNode(dist rdf.Term) rdf.Term {
	id := uuid.NewSHA1(nodeNamespace, []byte("annotation:"+dist.Kind.String()+":"+dist.Value))
	return rdf.NewBlank("annotation-" + id.String())
}
