package types

import (
	"time"

	"github.com/KirkDiggler/s3-model/internal/model"
)

// Tag is a key/value pair attached to a bucket or object
type Tag struct {
	f tagFields
}

type tagFields struct {
	key   *string
	value *string
}

func (f tagFields) clone() tagFields {
	return tagFields{
		key:   model.ClonePtr(f.key),
		value: model.ClonePtr(f.value),
	}
}

// TagBuilder stages the fields of a Tag
type TagBuilder struct {
	f tagFields
}

// NewTagBuilder returns a builder with every field absent
func NewTagBuilder() *TagBuilder {
	return &TagBuilder{}
}

// WithKey sets Key; nil clears it
func (b *TagBuilder) WithKey(v *string) *TagBuilder {
	b.f.key = model.ClonePtr(v)
	return b
}

// WithValue sets Value; nil clears it
func (b *TagBuilder) WithValue(v *string) *TagBuilder {
	b.f.value = model.ClonePtr(v)
	return b
}

// Build returns an immutable Tag holding a copy of the staged fields
func (b *TagBuilder) Build() *Tag {
	return &Tag{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of t
func (t *Tag) ToBuilder() *TagBuilder {
	return &TagBuilder{f: t.f.clone()}
}

func (t *Tag) Key() (string, bool) {
	return model.Get(t.f.key)
}

func (t *Tag) Value() (string, bool) {
	return model.Get(t.f.value)
}

// Equal reports whether t and other hold the same field values
func (t *Tag) Equal(other *Tag) bool {
	if t == nil || other == nil {
		return t == other
	}
	return model.EqualPtr(t.f.key, other.f.key) &&
		model.EqualPtr(t.f.value, other.f.value)
}

// Hash is consistent with Equal
func (t *Tag) Hash() uint64 {
	if t == nil {
		return 0
	}
	h := model.NewHasher("Tag")
	h.String(t.f.key)
	h.String(t.f.value)
	return h.Sum64()
}

func (t *Tag) String() string {
	return model.NewPrinter("Tag").
		Field("Key", t.f.key).
		Field("Value", t.f.value).
		String()
}

// Tagging is the tag set of a bucket or object
type Tagging struct {
	f taggingFields
}

type taggingFields struct {
	tagSet []*Tag
}

func (f taggingFields) clone() taggingFields {
	return taggingFields{
		tagSet: model.CloneSlice(f.tagSet),
	}
}

// TaggingBuilder stages the fields of a Tagging
type TaggingBuilder struct {
	f taggingFields
}

// NewTaggingBuilder returns a builder with every field absent
func NewTaggingBuilder() *TaggingBuilder {
	return &TaggingBuilder{}
}

// WithTagSet sets TagSet. nil leaves it absent; an empty slice is present and empty.
func (b *TaggingBuilder) WithTagSet(v []*Tag) *TaggingBuilder {
	b.f.tagSet = model.CloneSlice(v)
	return b
}

// Build returns an immutable Tagging holding a copy of the staged fields
func (b *TaggingBuilder) Build() *Tagging {
	return &Tagging{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of t
func (t *Tagging) ToBuilder() *TaggingBuilder {
	return &TaggingBuilder{f: t.f.clone()}
}

// TagSet is ordered as the service returned it
func (t *Tagging) TagSet() ([]*Tag, bool) {
	return model.CloneSlice(t.f.tagSet), t.f.tagSet != nil
}

// Equal reports whether t and other hold the same field values
func (t *Tagging) Equal(other *Tagging) bool {
	if t == nil || other == nil {
		return t == other
	}
	return model.EqualValues(t.f.tagSet, other.f.tagSet)
}

// Hash is consistent with Equal
func (t *Tagging) Hash() uint64 {
	if t == nil {
		return 0
	}
	h := model.NewHasher("Tagging")
	model.HashValues(h, t.f.tagSet)
	return h.Sum64()
}

func (t *Tagging) String() string {
	return model.NewPrinter("Tagging").
		Field("TagSet", t.f.tagSet).
		String()
}

// Owner identifies the owner of a bucket or object
type Owner struct {
	f ownerFields
}

type ownerFields struct {
	displayName *string
	id          *string
}

func (f ownerFields) clone() ownerFields {
	return ownerFields{
		displayName: model.ClonePtr(f.displayName),
		id:          model.ClonePtr(f.id),
	}
}

// OwnerBuilder stages the fields of an Owner
type OwnerBuilder struct {
	f ownerFields
}

// NewOwnerBuilder returns a builder with every field absent
func NewOwnerBuilder() *OwnerBuilder {
	return &OwnerBuilder{}
}

// WithDisplayName sets DisplayName; nil clears it
func (b *OwnerBuilder) WithDisplayName(v *string) *OwnerBuilder {
	b.f.displayName = model.ClonePtr(v)
	return b
}

// WithID sets ID; nil clears it
func (b *OwnerBuilder) WithID(v *string) *OwnerBuilder {
	b.f.id = model.ClonePtr(v)
	return b
}

// Build returns an immutable Owner holding a copy of the staged fields
func (b *OwnerBuilder) Build() *Owner {
	return &Owner{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of o
func (o *Owner) ToBuilder() *OwnerBuilder {
	return &OwnerBuilder{f: o.f.clone()}
}

// DisplayName is the owner's display name. Not every region returns it
func (o *Owner) DisplayName() (string, bool) {
	return model.Get(o.f.displayName)
}

// ID is the canonical user id
func (o *Owner) ID() (string, bool) {
	return model.Get(o.f.id)
}

// Equal reports whether o and other hold the same field values
func (o *Owner) Equal(other *Owner) bool {
	if o == nil || other == nil {
		return o == other
	}
	return model.EqualPtr(o.f.displayName, other.f.displayName) &&
		model.EqualPtr(o.f.id, other.f.id)
}

// Hash is consistent with Equal
func (o *Owner) Hash() uint64 {
	if o == nil {
		return 0
	}
	h := model.NewHasher("Owner")
	h.String(o.f.displayName)
	h.String(o.f.id)
	return h.Sum64()
}

func (o *Owner) String() string {
	return model.NewPrinter("Owner").
		Field("DisplayName", o.f.displayName).
		Field("ID", o.f.id).
		String()
}

// Bucket is one entry of a bucket listing
type Bucket struct {
	f bucketFields
}

type bucketFields struct {
	name         *string
	creationDate *time.Time
	bucketRegion *string
}

func (f bucketFields) clone() bucketFields {
	return bucketFields{
		name:         model.ClonePtr(f.name),
		creationDate: model.ClonePtr(f.creationDate),
		bucketRegion: model.ClonePtr(f.bucketRegion),
	}
}

// BucketBuilder stages the fields of a Bucket
type BucketBuilder struct {
	f bucketFields
}

// NewBucketBuilder returns a builder with every field absent
func NewBucketBuilder() *BucketBuilder {
	return &BucketBuilder{}
}

// WithName sets Name; nil clears it
func (b *BucketBuilder) WithName(v *string) *BucketBuilder {
	b.f.name = model.ClonePtr(v)
	return b
}

// WithCreationDate sets CreationDate; nil clears it
func (b *BucketBuilder) WithCreationDate(v *time.Time) *BucketBuilder {
	b.f.creationDate = model.ClonePtr(v)
	return b
}

// WithBucketRegion sets BucketRegion; nil clears it
func (b *BucketBuilder) WithBucketRegion(v *string) *BucketBuilder {
	b.f.bucketRegion = model.ClonePtr(v)
	return b
}

// Build returns an immutable Bucket holding a copy of the staged fields
func (b *BucketBuilder) Build() *Bucket {
	return &Bucket{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of b
func (b *Bucket) ToBuilder() *BucketBuilder {
	return &BucketBuilder{f: b.f.clone()}
}

func (b *Bucket) Name() (string, bool) {
	return model.Get(b.f.name)
}

// CreationDate is when the bucket was created
func (b *Bucket) CreationDate() (time.Time, bool) {
	return model.Get(b.f.creationDate)
}

// BucketRegion is the region the bucket lives in
func (b *Bucket) BucketRegion() (string, bool) {
	return model.Get(b.f.bucketRegion)
}

// Equal reports whether b and other hold the same field values
func (b *Bucket) Equal(other *Bucket) bool {
	if b == nil || other == nil {
		return b == other
	}
	return model.EqualPtr(b.f.name, other.f.name) &&
		model.EqualTime(b.f.creationDate, other.f.creationDate) &&
		model.EqualPtr(b.f.bucketRegion, other.f.bucketRegion)
}

// Hash is consistent with Equal
func (b *Bucket) Hash() uint64 {
	if b == nil {
		return 0
	}
	h := model.NewHasher("Bucket")
	h.String(b.f.name)
	h.Time(b.f.creationDate)
	h.String(b.f.bucketRegion)
	return h.Sum64()
}

func (b *Bucket) String() string {
	return model.NewPrinter("Bucket").
		Field("Name", b.f.name).
		Field("CreationDate", b.f.creationDate).
		Field("BucketRegion", b.f.bucketRegion).
		String()
}

// Object is one entry of an object listing
type Object struct {
	f objectFields
}

type objectFields struct {
	key               *string
	lastModified      *time.Time
	etag              *string
	checksumAlgorithm []ChecksumAlgorithm
	size              *int64
	storageClass      *ObjectStorageClass
	owner             *Owner
}

func (f objectFields) clone() objectFields {
	return objectFields{
		key:               model.ClonePtr(f.key),
		lastModified:      model.ClonePtr(f.lastModified),
		etag:              model.ClonePtr(f.etag),
		checksumAlgorithm: model.CloneSlice(f.checksumAlgorithm),
		size:              model.ClonePtr(f.size),
		storageClass:      model.ClonePtr(f.storageClass),
		owner:             f.owner,
	}
}

// ObjectBuilder stages the fields of an Object
type ObjectBuilder struct {
	f objectFields
}

// NewObjectBuilder returns a builder with every field absent
func NewObjectBuilder() *ObjectBuilder {
	return &ObjectBuilder{}
}

// WithKey sets Key; nil clears it
func (b *ObjectBuilder) WithKey(v *string) *ObjectBuilder {
	b.f.key = model.ClonePtr(v)
	return b
}

// WithLastModified sets LastModified; nil clears it
func (b *ObjectBuilder) WithLastModified(v *time.Time) *ObjectBuilder {
	b.f.lastModified = model.ClonePtr(v)
	return b
}

// WithETag sets ETag; nil clears it
func (b *ObjectBuilder) WithETag(v *string) *ObjectBuilder {
	b.f.etag = model.ClonePtr(v)
	return b
}

// WithChecksumAlgorithm sets ChecksumAlgorithm. nil leaves it absent; an empty slice is present and empty.
func (b *ObjectBuilder) WithChecksumAlgorithm(v []ChecksumAlgorithm) *ObjectBuilder {
	b.f.checksumAlgorithm = model.CloneSlice(v)
	return b
}

// WithSize sets Size; nil clears it
func (b *ObjectBuilder) WithSize(v *int64) *ObjectBuilder {
	b.f.size = model.ClonePtr(v)
	return b
}

// WithStorageClass sets StorageClass; nil clears it
func (b *ObjectBuilder) WithStorageClass(v *ObjectStorageClass) *ObjectBuilder {
	b.f.storageClass = model.ClonePtr(v)
	return b
}

// WithOwner sets Owner
func (b *ObjectBuilder) WithOwner(v *Owner) *ObjectBuilder {
	b.f.owner = v
	return b
}

// Build returns an immutable Object holding a copy of the staged fields
func (b *ObjectBuilder) Build() *Object {
	return &Object{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of o
func (o *Object) ToBuilder() *ObjectBuilder {
	return &ObjectBuilder{f: o.f.clone()}
}

func (o *Object) Key() (string, bool) {
	return model.Get(o.f.key)
}

// LastModified is when the object was last written
func (o *Object) LastModified() (time.Time, bool) {
	return model.Get(o.f.lastModified)
}

// ETag is the entity tag, quoted as the service sent it
func (o *Object) ETag() (string, bool) {
	return model.Get(o.f.etag)
}

// ChecksumAlgorithm lists the checksum algorithms the object was uploaded with
func (o *Object) ChecksumAlgorithm() ([]ChecksumAlgorithm, bool) {
	return model.CloneSlice(o.f.checksumAlgorithm), o.f.checksumAlgorithm != nil
}

// Size is the size in bytes
func (o *Object) Size() (int64, bool) {
	return model.Get(o.f.size)
}

// StorageClass is the storage class
func (o *Object) StorageClass() (ObjectStorageClass, bool) {
	return model.Get(o.f.storageClass)
}

// Owner is present only when the listing asked for owners
func (o *Object) Owner() (*Owner, bool) {
	return o.f.owner, o.f.owner != nil
}

// Equal reports whether o and other hold the same field values
func (o *Object) Equal(other *Object) bool {
	if o == nil || other == nil {
		return o == other
	}
	return model.EqualPtr(o.f.key, other.f.key) &&
		model.EqualTime(o.f.lastModified, other.f.lastModified) &&
		model.EqualPtr(o.f.etag, other.f.etag) &&
		model.EqualSlice(o.f.checksumAlgorithm, other.f.checksumAlgorithm) &&
		model.EqualPtr(o.f.size, other.f.size) &&
		model.EqualPtr(o.f.storageClass, other.f.storageClass) &&
		o.f.owner.Equal(other.f.owner)
}

// Hash is consistent with Equal
func (o *Object) Hash() uint64 {
	if o == nil {
		return 0
	}
	h := model.NewHasher("Object")
	h.String(o.f.key)
	h.Time(o.f.lastModified)
	h.String(o.f.etag)
	model.HashEnums(h, o.f.checksumAlgorithm)
	h.Int64(o.f.size)
	model.HashEnum(h, o.f.storageClass)
	h.Value(o.f.owner)
	return h.Sum64()
}

func (o *Object) String() string {
	return model.NewPrinter("Object").
		Field("Key", o.f.key).
		Field("LastModified", o.f.lastModified).
		Field("ETag", o.f.etag).
		Field("ChecksumAlgorithm", o.f.checksumAlgorithm).
		Field("Size", o.f.size).
		Field("StorageClass", o.f.storageClass).
		Field("Owner", o.f.owner).
		String()
}

// CommonPrefix is a key prefix rolled up by a delimiter
type CommonPrefix struct {
	f commonPrefixFields
}

type commonPrefixFields struct {
	prefix *string
}

func (f commonPrefixFields) clone() commonPrefixFields {
	return commonPrefixFields{
		prefix: model.ClonePtr(f.prefix),
	}
}

// CommonPrefixBuilder stages the fields of a CommonPrefix
type CommonPrefixBuilder struct {
	f commonPrefixFields
}

// NewCommonPrefixBuilder returns a builder with every field absent
func NewCommonPrefixBuilder() *CommonPrefixBuilder {
	return &CommonPrefixBuilder{}
}

// WithPrefix sets Prefix; nil clears it
func (b *CommonPrefixBuilder) WithPrefix(v *string) *CommonPrefixBuilder {
	b.f.prefix = model.ClonePtr(v)
	return b
}

// Build returns an immutable CommonPrefix holding a copy of the staged fields
func (b *CommonPrefixBuilder) Build() *CommonPrefix {
	return &CommonPrefix{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of c
func (c *CommonPrefix) ToBuilder() *CommonPrefixBuilder {
	return &CommonPrefixBuilder{f: c.f.clone()}
}

// Prefix limits results to keys beginning with this string
func (c *CommonPrefix) Prefix() (string, bool) {
	return model.Get(c.f.prefix)
}

// Equal reports whether c and other hold the same field values
func (c *CommonPrefix) Equal(other *CommonPrefix) bool {
	if c == nil || other == nil {
		return c == other
	}
	return model.EqualPtr(c.f.prefix, other.f.prefix)
}

// Hash is consistent with Equal
func (c *CommonPrefix) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := model.NewHasher("CommonPrefix")
	h.String(c.f.prefix)
	return h.Sum64()
}

func (c *CommonPrefix) String() string {
	return model.NewPrinter("CommonPrefix").
		Field("Prefix", c.f.prefix).
		String()
}

// VersioningConfiguration is the versioning state written to a bucket
type VersioningConfiguration struct {
	f versioningConfigurationFields
}

type versioningConfigurationFields struct {
	status    *BucketVersioningStatus
	mfaDelete *MFADelete
}

func (f versioningConfigurationFields) clone() versioningConfigurationFields {
	return versioningConfigurationFields{
		status:    model.ClonePtr(f.status),
		mfaDelete: model.ClonePtr(f.mfaDelete),
	}
}

// VersioningConfigurationBuilder stages the fields of a VersioningConfiguration
type VersioningConfigurationBuilder struct {
	f versioningConfigurationFields
}

// NewVersioningConfigurationBuilder returns a builder with every field absent
func NewVersioningConfigurationBuilder() *VersioningConfigurationBuilder {
	return &VersioningConfigurationBuilder{}
}

// WithStatus sets Status; nil clears it
func (b *VersioningConfigurationBuilder) WithStatus(v *BucketVersioningStatus) *VersioningConfigurationBuilder {
	b.f.status = model.ClonePtr(v)
	return b
}

// WithMFADelete sets MFADelete; nil clears it
func (b *VersioningConfigurationBuilder) WithMFADelete(v *MFADelete) *VersioningConfigurationBuilder {
	b.f.mfaDelete = model.ClonePtr(v)
	return b
}

// Build returns an immutable VersioningConfiguration holding a copy of the staged fields
func (b *VersioningConfigurationBuilder) Build() *VersioningConfiguration {
	return &VersioningConfiguration{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of v
func (v *VersioningConfiguration) ToBuilder() *VersioningConfigurationBuilder {
	return &VersioningConfigurationBuilder{f: v.f.clone()}
}

// Status is the versioning state
func (v *VersioningConfiguration) Status() (BucketVersioningStatus, bool) {
	return model.Get(v.f.status)
}

// MFADelete reports whether MFA delete is enabled
func (v *VersioningConfiguration) MFADelete() (MFADelete, bool) {
	return model.Get(v.f.mfaDelete)
}

// Equal reports whether v and other hold the same field values
func (v *VersioningConfiguration) Equal(other *VersioningConfiguration) bool {
	if v == nil || other == nil {
		return v == other
	}
	return model.EqualPtr(v.f.status, other.f.status) &&
		model.EqualPtr(v.f.mfaDelete, other.f.mfaDelete)
}

// Hash is consistent with Equal
func (v *VersioningConfiguration) Hash() uint64 {
	if v == nil {
		return 0
	}
	h := model.NewHasher("VersioningConfiguration")
	model.HashEnum(h, v.f.status)
	model.HashEnum(h, v.f.mfaDelete)
	return h.Sum64()
}

func (v *VersioningConfiguration) String() string {
	return model.NewPrinter("VersioningConfiguration").
		Field("Status", v.f.status).
		Field("MFADelete", v.f.mfaDelete).
		String()
}

// CreateBucketConfiguration carries the location of a new bucket
type CreateBucketConfiguration struct {
	f createBucketConfigurationFields
}

type createBucketConfigurationFields struct {
	locationConstraint *BucketLocationConstraint
}

func (f createBucketConfigurationFields) clone() createBucketConfigurationFields {
	return createBucketConfigurationFields{
		locationConstraint: model.ClonePtr(f.locationConstraint),
	}
}

// CreateBucketConfigurationBuilder stages the fields of a CreateBucketConfiguration
type CreateBucketConfigurationBuilder struct {
	f createBucketConfigurationFields
}

// NewCreateBucketConfigurationBuilder returns a builder with every field absent
func NewCreateBucketConfigurationBuilder() *CreateBucketConfigurationBuilder {
	return &CreateBucketConfigurationBuilder{}
}

// WithLocationConstraint sets LocationConstraint; nil clears it
func (b *CreateBucketConfigurationBuilder) WithLocationConstraint(v *BucketLocationConstraint) *CreateBucketConfigurationBuilder {
	b.f.locationConstraint = model.ClonePtr(v)
	return b
}

// Build returns an immutable CreateBucketConfiguration holding a copy of the staged fields
func (b *CreateBucketConfigurationBuilder) Build() *CreateBucketConfiguration {
	return &CreateBucketConfiguration{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of c
func (c *CreateBucketConfiguration) ToBuilder() *CreateBucketConfigurationBuilder {
	return &CreateBucketConfigurationBuilder{f: c.f.clone()}
}

// LocationConstraint is the region the bucket is created in
func (c *CreateBucketConfiguration) LocationConstraint() (BucketLocationConstraint, bool) {
	return model.Get(c.f.locationConstraint)
}

// Equal reports whether c and other hold the same field values
func (c *CreateBucketConfiguration) Equal(other *CreateBucketConfiguration) bool {
	if c == nil || other == nil {
		return c == other
	}
	return model.EqualPtr(c.f.locationConstraint, other.f.locationConstraint)
}

// Hash is consistent with Equal
func (c *CreateBucketConfiguration) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := model.NewHasher("CreateBucketConfiguration")
	model.HashEnum(h, c.f.locationConstraint)
	return h.Sum64()
}

func (c *CreateBucketConfiguration) String() string {
	return model.NewPrinter("CreateBucketConfiguration").
		Field("LocationConstraint", c.f.locationConstraint).
		String()
}

// CopyObjectResult describes the object a copy produced
type CopyObjectResult struct {
	f copyObjectResultFields
}

type copyObjectResultFields struct {
	etag           *string
	lastModified   *time.Time
	checksumCRC32  *string
	checksumSHA256 *string
}

func (f copyObjectResultFields) clone() copyObjectResultFields {
	return copyObjectResultFields{
		etag:           model.ClonePtr(f.etag),
		lastModified:   model.ClonePtr(f.lastModified),
		checksumCRC32:  model.ClonePtr(f.checksumCRC32),
		checksumSHA256: model.ClonePtr(f.checksumSHA256),
	}
}

// CopyObjectResultBuilder stages the fields of a CopyObjectResult
type CopyObjectResultBuilder struct {
	f copyObjectResultFields
}

// NewCopyObjectResultBuilder returns a builder with every field absent
func NewCopyObjectResultBuilder() *CopyObjectResultBuilder {
	return &CopyObjectResultBuilder{}
}

// WithETag sets ETag; nil clears it
func (b *CopyObjectResultBuilder) WithETag(v *string) *CopyObjectResultBuilder {
	b.f.etag = model.ClonePtr(v)
	return b
}

// WithLastModified sets LastModified; nil clears it
func (b *CopyObjectResultBuilder) WithLastModified(v *time.Time) *CopyObjectResultBuilder {
	b.f.lastModified = model.ClonePtr(v)
	return b
}

// WithChecksumCRC32 sets ChecksumCRC32; nil clears it
func (b *CopyObjectResultBuilder) WithChecksumCRC32(v *string) *CopyObjectResultBuilder {
	b.f.checksumCRC32 = model.ClonePtr(v)
	return b
}

// WithChecksumSHA256 sets ChecksumSHA256; nil clears it
func (b *CopyObjectResultBuilder) WithChecksumSHA256(v *string) *CopyObjectResultBuilder {
	b.f.checksumSHA256 = model.ClonePtr(v)
	return b
}

// Build returns an immutable CopyObjectResult holding a copy of the staged fields
func (b *CopyObjectResultBuilder) Build() *CopyObjectResult {
	return &CopyObjectResult{f: b.f.clone()}
}

// ToBuilder returns a builder seeded with a copy of c
func (c *CopyObjectResult) ToBuilder() *CopyObjectResultBuilder {
	return &CopyObjectResultBuilder{f: c.f.clone()}
}

// ETag is the entity tag, quotes included
func (c *CopyObjectResult) ETag() (string, bool) {
	return model.Get(c.f.etag)
}

// LastModified is when the object was last written
func (c *CopyObjectResult) LastModified() (time.Time, bool) {
	return model.Get(c.f.lastModified)
}

// ChecksumCRC32 is the base64 CRC32 of the object
func (c *CopyObjectResult) ChecksumCRC32() (string, bool) {
	return model.Get(c.f.checksumCRC32)
}

// ChecksumSHA256 is the base64 SHA-256 of the object
func (c *CopyObjectResult) ChecksumSHA256() (string, bool) {
	return model.Get(c.f.checksumSHA256)
}

// Equal reports whether c and other hold the same field values
func (c *CopyObjectResult) Equal(other *CopyObjectResult) bool {
	if c == nil || other == nil {
		return c == other
	}
	return model.EqualPtr(c.f.etag, other.f.etag) &&
		model.EqualTime(c.f.lastModified, other.f.lastModified) &&
		model.EqualPtr(c.f.checksumCRC32, other.f.checksumCRC32) &&
		model.EqualPtr(c.f.checksumSHA256, other.f.checksumSHA256)
}

// Hash is consistent with Equal
func (c *CopyObjectResult) Hash() uint64 {
	if c == nil {
		return 0
	}
	h := model.NewHasher("CopyObjectResult")
	h.String(c.f.etag)
	h.Time(c.f.lastModified)
	h.String(c.f.checksumCRC32)
	h.String(c.f.checksumSHA256)
	return h.Sum64()
}

func (c *CopyObjectResult) String() string {
	return model.NewPrinter("CopyObjectResult").
		Field("ETag", c.f.etag).
		Field("LastModified", c.f.lastModified).
		Field("ChecksumCRC32", c.f.checksumCRC32).
		Field("ChecksumSHA256", c.f.checksumSHA256).
		String()
}
