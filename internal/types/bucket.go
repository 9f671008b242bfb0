package types

import (
	"github.com/KirkDiggler/s3-model/internal/model"
)

// CreateBucketRequest is the input of CreateBucket
type CreateBucketRequest struct {
	f createBucketRequestFields
}

type createBucketRequestFields struct {
	bucket                     *string
	acl                        *BucketCannedACL
	createBucketConfiguration  *CreateBucketConfiguration
	grantFullControl           *string
	grantRead                  *string
	grantWrite                 *string
	objectLockEnabledForBucket *bool
	objectOwnership            *ObjectOwnership
}

func (f createBucketRequestFields) clone() createBucketRequestFields {
	return createBucketRequestFields{
		bucket:                     model.ClonePtr(f.bucket),
		acl:                        model.ClonePtr(f.acl),
		createBucketConfiguration:  f.createBucketConfiguration,
		grantFullControl:           model.ClonePtr(f.grantFullControl),
		grantRead:                  model.ClonePtr(f.grantRead),
		grantWrite:                 model.ClonePtr(f.grantWrite),
		objectLockEnabledForBucket: model.ClonePtr(f.objectLockEnabledForBucket),
		objectOwnership:            model.ClonePtr(f.objectOwnership),
	}
}

// CreateBucketRequestBuilder stages the fields of a CreateBucketRequest
type CreateBucketRequestBuilder struct {
	f createBucketRequestFields
}

// NewCreateBucketRequestBuilder returns a builder with every field absent
func NewCreateBucketRequestBuilder() *CreateBucketRequestBuilder {
	return &CreateBucketRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *CreateBucketRequestBuilder) WithBucket(v *string) *CreateBucketRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithACL sets ACL; nil clears it
func (b *CreateBucketRequestBuilder) WithACL(v *BucketCannedACL) *CreateBucketRequestBuilder {
	b.f.acl = model.ClonePtr(v)
	return b
}

// WithCreateBucketConfiguration sets CreateBucketConfiguration
func (b *CreateBucketRequestBuilder) WithCreateBucketConfiguration(v *CreateBucketConfiguration) *CreateBucketRequestBuilder {
	b.f.createBucketConfiguration = v
	return b
}

// WithGrantFullControl sets GrantFullControl; nil clears it
func (b *CreateBucketRequestBuilder) WithGrantFullControl(v *string) *CreateBucketRequestBuilder {
	b.f.grantFullControl = model.ClonePtr(v)
	return b
}

// WithGrantRead sets GrantRead; nil clears it
func (b *CreateBucketRequestBuilder) WithGrantRead(v *string) *CreateBucketRequestBuilder {
	b.f.grantRead = model.ClonePtr(v)
	return b
}

// WithGrantWrite sets GrantWrite; nil clears it
func (b *CreateBucketRequestBuilder) WithGrantWrite(v *string) *CreateBucketRequestBuilder {
	b.f.grantWrite = model.ClonePtr(v)
	return b
}

// WithObjectLockEnabledForBucket sets ObjectLockEnabledForBucket; nil clears it
func (b *CreateBucketRequestBuilder) WithObjectLockEnabledForBucket(v *bool) *CreateBucketRequestBuilder {
	b.f.objectLockEnabledForBucket = model.ClonePtr(v)
	return b
}

// WithObjectOwnership sets ObjectOwnership; nil clears it
func (b *CreateBucketRequestBuilder) WithObjectOwnership(v *ObjectOwnership) *CreateBucketRequestBuilder {
	b.f.objectOwnership = model.ClonePtr(v)
	return b
}

// Build returns an immutable CreateBucketRequest holding a copy of the staged fields
func (b *CreateBucketRequestBuilder) Build() *CreateBucketRequest {
	return &CreateBucketRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *CreateBucketRequest) ToBuilder() *CreateBucketRequestBuilder {
	return &CreateBucketRequestBuilder{f: req.f.clone()}
}

func (req *CreateBucketRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

// ACL is the canned ACL applied to the resource
func (req *CreateBucketRequest) ACL() (BucketCannedACL, bool) {
	return model.Get(req.f.acl)
}

// CreateBucketConfiguration holds the location constraint for the new bucket
func (req *CreateBucketRequest) CreateBucketConfiguration() (*CreateBucketConfiguration, bool) {
	return req.f.createBucketConfiguration, req.f.createBucketConfiguration != nil
}

// GrantFullControl lists the grantees given full control
func (req *CreateBucketRequest) GrantFullControl() (string, bool) {
	return model.Get(req.f.grantFullControl)
}

// GrantRead lists the grantees allowed to read
func (req *CreateBucketRequest) GrantRead() (string, bool) {
	return model.Get(req.f.grantRead)
}

// GrantWrite lists the grantees allowed to write
func (req *CreateBucketRequest) GrantWrite() (string, bool) {
	return model.Get(req.f.grantWrite)
}

// ObjectLockEnabledForBucket reports whether Object Lock is enabled on creation
func (req *CreateBucketRequest) ObjectLockEnabledForBucket() (bool, bool) {
	return model.Get(req.f.objectLockEnabledForBucket)
}

// ObjectOwnership is the ownership control applied to the new bucket
func (req *CreateBucketRequest) ObjectOwnership() (ObjectOwnership, bool) {
	return model.Get(req.f.objectOwnership)
}

// Equal reports whether req and other hold the same field values
func (req *CreateBucketRequest) Equal(other *CreateBucketRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.acl, other.f.acl) &&
		req.f.createBucketConfiguration.Equal(other.f.createBucketConfiguration) &&
		model.EqualPtr(req.f.grantFullControl, other.f.grantFullControl) &&
		model.EqualPtr(req.f.grantRead, other.f.grantRead) &&
		model.EqualPtr(req.f.grantWrite, other.f.grantWrite) &&
		model.EqualPtr(req.f.objectLockEnabledForBucket, other.f.objectLockEnabledForBucket) &&
		model.EqualPtr(req.f.objectOwnership, other.f.objectOwnership)
}

// Hash is consistent with Equal
func (req *CreateBucketRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("CreateBucketRequest")
	h.String(req.f.bucket)
	model.HashEnum(h, req.f.acl)
	h.Value(req.f.createBucketConfiguration)
	h.String(req.f.grantFullControl)
	h.String(req.f.grantRead)
	h.String(req.f.grantWrite)
	h.Bool(req.f.objectLockEnabledForBucket)
	model.HashEnum(h, req.f.objectOwnership)
	return h.Sum64()
}

func (req *CreateBucketRequest) String() string {
	return model.NewPrinter("CreateBucketRequest").
		Field("Bucket", req.f.bucket).
		Field("ACL", req.f.acl).
		Field("CreateBucketConfiguration", req.f.createBucketConfiguration).
		Field("GrantFullControl", req.f.grantFullControl).
		Field("GrantRead", req.f.grantRead).
		Field("GrantWrite", req.f.grantWrite).
		Field("ObjectLockEnabledForBucket", req.f.objectLockEnabledForBucket).
		Field("ObjectOwnership", req.f.objectOwnership).
		String()
}

// CreateBucketResponse is the output of CreateBucket
type CreateBucketResponse struct {
	f createBucketResponseFields
}

type createBucketResponseFields struct {
	location *string
}

func (f createBucketResponseFields) clone() createBucketResponseFields {
	return createBucketResponseFields{
		location: model.ClonePtr(f.location),
	}
}

// CreateBucketResponseBuilder stages the fields of a CreateBucketResponse
type CreateBucketResponseBuilder struct {
	f createBucketResponseFields
}

// NewCreateBucketResponseBuilder returns a builder with every field absent
func NewCreateBucketResponseBuilder() *CreateBucketResponseBuilder {
	return &CreateBucketResponseBuilder{}
}

// WithLocation sets Location; nil clears it
func (b *CreateBucketResponseBuilder) WithLocation(v *string) *CreateBucketResponseBuilder {
	b.f.location = model.ClonePtr(v)
	return b
}

// Build returns an immutable CreateBucketResponse holding a copy of the staged fields
func (b *CreateBucketResponseBuilder) Build() *CreateBucketResponse {
	return &CreateBucketResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *CreateBucketResponse) ToBuilder() *CreateBucketResponseBuilder {
	return &CreateBucketResponseBuilder{f: resp.f.clone()}
}

// Location is the path or URL of the new bucket
func (resp *CreateBucketResponse) Location() (string, bool) {
	return model.Get(resp.f.location)
}

// Equal reports whether resp and other hold the same field values
func (resp *CreateBucketResponse) Equal(other *CreateBucketResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualPtr(resp.f.location, other.f.location)
}

// Hash is consistent with Equal
func (resp *CreateBucketResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("CreateBucketResponse")
	h.String(resp.f.location)
	return h.Sum64()
}

func (resp *CreateBucketResponse) String() string {
	return model.NewPrinter("CreateBucketResponse").
		Field("Location", resp.f.location).
		String()
}

// DeleteBucketRequest is the input of DeleteBucket
type DeleteBucketRequest struct {
	f deleteBucketRequestFields
}

type deleteBucketRequestFields struct {
	bucket              *string
	expectedBucketOwner *string
}

func (f deleteBucketRequestFields) clone() deleteBucketRequestFields {
	return deleteBucketRequestFields{
		bucket:              model.ClonePtr(f.bucket),
		expectedBucketOwner: model.ClonePtr(f.expectedBucketOwner),
	}
}

// DeleteBucketRequestBuilder stages the fields of a DeleteBucketRequest
type DeleteBucketRequestBuilder struct {
	f deleteBucketRequestFields
}

// NewDeleteBucketRequestBuilder returns a builder with every field absent
func NewDeleteBucketRequestBuilder() *DeleteBucketRequestBuilder {
	return &DeleteBucketRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *DeleteBucketRequestBuilder) WithBucket(v *string) *DeleteBucketRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *DeleteBucketRequestBuilder) WithExpectedBucketOwner(v *string) *DeleteBucketRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable DeleteBucketRequest holding a copy of the staged fields
func (b *DeleteBucketRequestBuilder) Build() *DeleteBucketRequest {
	return &DeleteBucketRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *DeleteBucketRequest) ToBuilder() *DeleteBucketRequestBuilder {
	return &DeleteBucketRequestBuilder{f: req.f.clone()}
}

func (req *DeleteBucketRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *DeleteBucketRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *DeleteBucketRequest) Equal(other *DeleteBucketRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *DeleteBucketRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("DeleteBucketRequest")
	h.String(req.f.bucket)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *DeleteBucketRequest) String() string {
	return model.NewPrinter("DeleteBucketRequest").
		Field("Bucket", req.f.bucket).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// DeleteBucketResponse is the output of DeleteBucket. It has no fields; every instance is interchangeable.
type DeleteBucketResponse struct{}

// NewDeleteBucketResponse returns the marker
func NewDeleteBucketResponse() DeleteBucketResponse {
	return DeleteBucketResponse{}
}

// Equal always reports true
func (DeleteBucketResponse) Equal(DeleteBucketResponse) bool {
	return true
}

// Hash returns the same value for every instance
func (DeleteBucketResponse) Hash() uint64 {
	return model.NewHasher("DeleteBucketResponse").Sum64()
}

func (DeleteBucketResponse) String() string {
	return "DeleteBucketResponse()"
}

// HeadBucketRequest is the input of HeadBucket
type HeadBucketRequest struct {
	f headBucketRequestFields
}

type headBucketRequestFields struct {
	bucket              *string
	expectedBucketOwner *string
}

func (f headBucketRequestFields) clone() headBucketRequestFields {
	return headBucketRequestFields{
		bucket:              model.ClonePtr(f.bucket),
		expectedBucketOwner: model.ClonePtr(f.expectedBucketOwner),
	}
}

// HeadBucketRequestBuilder stages the fields of a HeadBucketRequest
type HeadBucketRequestBuilder struct {
	f headBucketRequestFields
}

// NewHeadBucketRequestBuilder returns a builder with every field absent
func NewHeadBucketRequestBuilder() *HeadBucketRequestBuilder {
	return &HeadBucketRequestBuilder{}
}

// WithBucket sets Bucket; nil clears it
func (b *HeadBucketRequestBuilder) WithBucket(v *string) *HeadBucketRequestBuilder {
	b.f.bucket = model.ClonePtr(v)
	return b
}

// WithExpectedBucketOwner sets ExpectedBucketOwner; nil clears it
func (b *HeadBucketRequestBuilder) WithExpectedBucketOwner(v *string) *HeadBucketRequestBuilder {
	b.f.expectedBucketOwner = model.ClonePtr(v)
	return b
}

// Build returns an immutable HeadBucketRequest holding a copy of the staged fields
func (b *HeadBucketRequestBuilder) Build() *HeadBucketRequest {
	return &HeadBucketRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *HeadBucketRequest) ToBuilder() *HeadBucketRequestBuilder {
	return &HeadBucketRequestBuilder{f: req.f.clone()}
}

func (req *HeadBucketRequest) Bucket() (string, bool) {
	return model.Get(req.f.bucket)
}

// ExpectedBucketOwner is the account id the bucket must belong to; a mismatch fails with 403
func (req *HeadBucketRequest) ExpectedBucketOwner() (string, bool) {
	return model.Get(req.f.expectedBucketOwner)
}

// Equal reports whether req and other hold the same field values
func (req *HeadBucketRequest) Equal(other *HeadBucketRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.bucket, other.f.bucket) &&
		model.EqualPtr(req.f.expectedBucketOwner, other.f.expectedBucketOwner)
}

// Hash is consistent with Equal
func (req *HeadBucketRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("HeadBucketRequest")
	h.String(req.f.bucket)
	h.String(req.f.expectedBucketOwner)
	return h.Sum64()
}

func (req *HeadBucketRequest) String() string {
	return model.NewPrinter("HeadBucketRequest").
		Field("Bucket", req.f.bucket).
		Field("ExpectedBucketOwner", req.f.expectedBucketOwner).
		String()
}

// HeadBucketResponse is the output of HeadBucket
type HeadBucketResponse struct {
	f headBucketResponseFields
}

type headBucketResponseFields struct {
	bucketRegion     *string
	accessPointAlias *bool
}

func (f headBucketResponseFields) clone() headBucketResponseFields {
	return headBucketResponseFields{
		bucketRegion:     model.ClonePtr(f.bucketRegion),
		accessPointAlias: model.ClonePtr(f.accessPointAlias),
	}
}

// HeadBucketResponseBuilder stages the fields of a HeadBucketResponse
type HeadBucketResponseBuilder struct {
	f headBucketResponseFields
}

// NewHeadBucketResponseBuilder returns a builder with every field absent
func NewHeadBucketResponseBuilder() *HeadBucketResponseBuilder {
	return &HeadBucketResponseBuilder{}
}

// WithBucketRegion sets BucketRegion; nil clears it
func (b *HeadBucketResponseBuilder) WithBucketRegion(v *string) *HeadBucketResponseBuilder {
	b.f.bucketRegion = model.ClonePtr(v)
	return b
}

// WithAccessPointAlias sets AccessPointAlias; nil clears it
func (b *HeadBucketResponseBuilder) WithAccessPointAlias(v *bool) *HeadBucketResponseBuilder {
	b.f.accessPointAlias = model.ClonePtr(v)
	return b
}

// Build returns an immutable HeadBucketResponse holding a copy of the staged fields
func (b *HeadBucketResponseBuilder) Build() *HeadBucketResponse {
	return &HeadBucketResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *HeadBucketResponse) ToBuilder() *HeadBucketResponseBuilder {
	return &HeadBucketResponseBuilder{f: resp.f.clone()}
}

// BucketRegion is the region the bucket lives in
func (resp *HeadBucketResponse) BucketRegion() (string, bool) {
	return model.Get(resp.f.bucketRegion)
}

// AccessPointAlias reports whether the bucket name given was an access point alias
func (resp *HeadBucketResponse) AccessPointAlias() (bool, bool) {
	return model.Get(resp.f.accessPointAlias)
}

// Equal reports whether resp and other hold the same field values
func (resp *HeadBucketResponse) Equal(other *HeadBucketResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualPtr(resp.f.bucketRegion, other.f.bucketRegion) &&
		model.EqualPtr(resp.f.accessPointAlias, other.f.accessPointAlias)
}

// Hash is consistent with Equal
func (resp *HeadBucketResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("HeadBucketResponse")
	h.String(resp.f.bucketRegion)
	h.Bool(resp.f.accessPointAlias)
	return h.Sum64()
}

func (resp *HeadBucketResponse) String() string {
	return model.NewPrinter("HeadBucketResponse").
		Field("BucketRegion", resp.f.bucketRegion).
		Field("AccessPointAlias", resp.f.accessPointAlias).
		String()
}

// ListBucketsRequest is the input of ListBuckets
type ListBucketsRequest struct {
	f listBucketsRequestFields
}

type listBucketsRequestFields struct {
	maxBuckets        *int32
	continuationToken *string
	prefix            *string
	bucketRegion      *string
}

func (f listBucketsRequestFields) clone() listBucketsRequestFields {
	return listBucketsRequestFields{
		maxBuckets:        model.ClonePtr(f.maxBuckets),
		continuationToken: model.ClonePtr(f.continuationToken),
		prefix:            model.ClonePtr(f.prefix),
		bucketRegion:      model.ClonePtr(f.bucketRegion),
	}
}

// ListBucketsRequestBuilder stages the fields of a ListBucketsRequest
type ListBucketsRequestBuilder struct {
	f listBucketsRequestFields
}

// NewListBucketsRequestBuilder returns a builder with every field absent
func NewListBucketsRequestBuilder() *ListBucketsRequestBuilder {
	return &ListBucketsRequestBuilder{}
}

// WithMaxBuckets sets MaxBuckets; nil clears it
func (b *ListBucketsRequestBuilder) WithMaxBuckets(v *int32) *ListBucketsRequestBuilder {
	b.f.maxBuckets = model.ClonePtr(v)
	return b
}

// WithContinuationToken sets ContinuationToken; nil clears it
func (b *ListBucketsRequestBuilder) WithContinuationToken(v *string) *ListBucketsRequestBuilder {
	b.f.continuationToken = model.ClonePtr(v)
	return b
}

// WithPrefix sets Prefix; nil clears it
func (b *ListBucketsRequestBuilder) WithPrefix(v *string) *ListBucketsRequestBuilder {
	b.f.prefix = model.ClonePtr(v)
	return b
}

// WithBucketRegion sets BucketRegion; nil clears it
func (b *ListBucketsRequestBuilder) WithBucketRegion(v *string) *ListBucketsRequestBuilder {
	b.f.bucketRegion = model.ClonePtr(v)
	return b
}

// Build returns an immutable ListBucketsRequest holding a copy of the staged fields
func (b *ListBucketsRequestBuilder) Build() *ListBucketsRequest {
	return &ListBucketsRequest{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of req
func (req *ListBucketsRequest) ToBuilder() *ListBucketsRequestBuilder {
	return &ListBucketsRequestBuilder{f: req.f.clone()}
}

// MaxBuckets caps the number of buckets returned
func (req *ListBucketsRequest) MaxBuckets() (int32, bool) {
	return model.Get(req.f.maxBuckets)
}

// ContinuationToken is the opaque token from a previous truncated page
func (req *ListBucketsRequest) ContinuationToken() (string, bool) {
	return model.Get(req.f.continuationToken)
}

// Prefix limits results to keys beginning with this string
func (req *ListBucketsRequest) Prefix() (string, bool) {
	return model.Get(req.f.prefix)
}

// BucketRegion is the region the bucket lives in
func (req *ListBucketsRequest) BucketRegion() (string, bool) {
	return model.Get(req.f.bucketRegion)
}

// Equal reports whether req and other hold the same field values
func (req *ListBucketsRequest) Equal(other *ListBucketsRequest) bool {
	if req == nil || other == nil {
		return req == other
	}
	return model.EqualPtr(req.f.maxBuckets, other.f.maxBuckets) &&
		model.EqualPtr(req.f.continuationToken, other.f.continuationToken) &&
		model.EqualPtr(req.f.prefix, other.f.prefix) &&
		model.EqualPtr(req.f.bucketRegion, other.f.bucketRegion)
}

// Hash is consistent with Equal
func (req *ListBucketsRequest) Hash() uint64 {
	if req == nil {
		return 0
	}
	h := model.NewHasher("ListBucketsRequest")
	h.Int32(req.f.maxBuckets)
	h.String(req.f.continuationToken)
	h.String(req.f.prefix)
	h.String(req.f.bucketRegion)
	return h.Sum64()
}

func (req *ListBucketsRequest) String() string {
	return model.NewPrinter("ListBucketsRequest").
		Field("MaxBuckets", req.f.maxBuckets).
		Field("ContinuationToken", req.f.continuationToken).
		Field("Prefix", req.f.prefix).
		Field("BucketRegion", req.f.bucketRegion).
		String()
}

// ListBucketsResponse is the output of ListBuckets
type ListBucketsResponse struct {
	f listBucketsResponseFields
}

type listBucketsResponseFields struct {
	buckets           []*Bucket
	owner             *Owner
	continuationToken *string
	prefix            *string
}

func (f listBucketsResponseFields) clone() listBucketsResponseFields {
	return listBucketsResponseFields{
		buckets:           model.CloneSlice(f.buckets),
		owner:             f.owner,
		continuationToken: model.ClonePtr(f.continuationToken),
		prefix:            model.ClonePtr(f.prefix),
	}
}

// ListBucketsResponseBuilder stages the fields of a ListBucketsResponse
type ListBucketsResponseBuilder struct {
	f listBucketsResponseFields
}

// NewListBucketsResponseBuilder returns a builder with every field absent
func NewListBucketsResponseBuilder() *ListBucketsResponseBuilder {
	return &ListBucketsResponseBuilder{}
}

// WithBuckets sets Buckets. nil leaves it absent; an empty slice is present and empty.
func (b *ListBucketsResponseBuilder) WithBuckets(v []*Bucket) *ListBucketsResponseBuilder {
	b.f.buckets = model.CloneSlice(v)
	return b
}

// WithOwner sets Owner
func (b *ListBucketsResponseBuilder) WithOwner(v *Owner) *ListBucketsResponseBuilder {
	b.f.owner = v
	return b
}

// WithContinuationToken sets ContinuationToken; nil clears it
func (b *ListBucketsResponseBuilder) WithContinuationToken(v *string) *ListBucketsResponseBuilder {
	b.f.continuationToken = model.ClonePtr(v)
	return b
}

// WithPrefix sets Prefix; nil clears it
func (b *ListBucketsResponseBuilder) WithPrefix(v *string) *ListBucketsResponseBuilder {
	b.f.prefix = model.ClonePtr(v)
	return b
}

// Build returns an immutable ListBucketsResponse holding a copy of the staged fields
func (b *ListBucketsResponseBuilder) Build() *ListBucketsResponse {
	return &ListBucketsResponse{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of resp
func (resp *ListBucketsResponse) ToBuilder() *ListBucketsResponseBuilder {
	return &ListBucketsResponseBuilder{f: resp.f.clone()}
}

// Buckets is the page of buckets
func (resp *ListBucketsResponse) Buckets() ([]*Bucket, bool) {
	return model.CloneSlice(resp.f.buckets), resp.f.buckets != nil
}

// Owner is the account that owns the resource
func (resp *ListBucketsResponse) Owner() (*Owner, bool) {
	return resp.f.owner, resp.f.owner != nil
}

// ContinuationToken is the opaque token from a previous truncated page
func (resp *ListBucketsResponse) ContinuationToken() (string, bool) {
	return model.Get(resp.f.continuationToken)
}

// Prefix limits results to keys beginning with this string
func (resp *ListBucketsResponse) Prefix() (string, bool) {
	return model.Get(resp.f.prefix)
}

// Equal reports whether resp and other hold the same field values
func (resp *ListBucketsResponse) Equal(other *ListBucketsResponse) bool {
	if resp == nil || other == nil {
		return resp == other
	}
	return model.EqualValues(resp.f.buckets, other.f.buckets) &&
		resp.f.owner.Equal(other.f.owner) &&
		model.EqualPtr(resp.f.continuationToken, other.f.continuationToken) &&
		model.EqualPtr(resp.f.prefix, other.f.prefix)
}

// Hash is consistent with Equal
func (resp *ListBucketsResponse) Hash() uint64 {
	if resp == nil {
		return 0
	}
	h := model.NewHasher("ListBucketsResponse")
	model.HashValues(h, resp.f.buckets)
	h.Value(resp.f.owner)
	h.String(resp.f.continuationToken)
	h.String(resp.f.prefix)
	return h.Sum64()
}

func (resp *ListBucketsResponse) String() string {
	return model.NewPrinter("ListBucketsResponse").
		Field("Buckets", resp.f.buckets).
		Field("Owner", resp.f.owner).
		Field("ContinuationToken", resp.f.continuationToken).
		Field("Prefix", resp.f.prefix).
		String()
}
